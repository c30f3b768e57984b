package request

// UpdateDetailsRequest is a partial update: absent fields keep their stored
// values, but at least one must be present.
type UpdateDetailsRequest struct {
	Mobile  *string `json:"mobile,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *UpdateDetailsRequest) Empty() bool {
	return r.Mobile == nil && r.Pincode == nil && r.Address == nil
}
