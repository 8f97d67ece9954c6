package api

// Required fields are pointers so the boundary can distinguish a field that
// was omitted from one submitted as an empty string: omission is a client
// error, while an empty string is a legitimate input for the validator to
// judge.

type emailRequest struct {
	Email *string `json:"email"`
}

func (r emailRequest) missing() []string {
	if r.Email == nil {
		return []string{"email"}
	}
	return nil
}

type phoneRequest struct {
	Phone *string `json:"phone"`
}

func (r phoneRequest) missing() []string {
	if r.Phone == nil {
		return []string{"phone"}
	}
	return nil
}

type urlRequest struct {
	URL *string `json:"url"`
}

func (r urlRequest) missing() []string {
	if r.URL == nil {
		return []string{"url"}
	}
	return nil
}

type regexRequest struct {
	Text    *string `json:"text"`
	Pattern *string `json:"pattern"`
	Flags   string  `json:"flags"`
}

func (r regexRequest) missing() []string {
	var fields []string
	if r.Text == nil {
		fields = append(fields, "text")
	}
	if r.Pattern == nil {
		fields = append(fields, "pattern")
	}
	return fields
}
