package dto

type UserUpdateRequest struct {
	FullName  *string `json:"full_name"`
	Password  *string `json:"password"`
	IsActive  *bool   `json:"is_active"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
	Telephone *string `json:"telephone"`
}

// Fields collects the supplied values into a partial update set.
func (r *UserUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.FullName != nil {
		fields["full_name"] = *r.FullName
	}
	if r.Password != nil {
		fields["password"] = *r.Password
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.City != nil {
		fields["city"] = *r.City
	}
	if r.Country != nil {
		fields["country"] = *r.Country
	}
	if r.Telephone != nil {
		fields["telephone"] = *r.Telephone
	}
	return fields
}

type SuperuserRequest struct {
	IsSuperuser bool `json:"is_superuser"`
}
