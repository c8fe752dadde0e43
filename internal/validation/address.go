package validation

import (
	"storefront/internal/models"
)

type SavedAddressInput struct {
	CustomerID   *string `json:"customer_id"   validate:"required,uid"`
	Label        *string `json:"label"         validate:"omitempty,max=50"`
	Address      *string `json:"address"       validate:"required,min=5,max=200"`
	City         *string `json:"city"          validate:"required,min=2,max=50"`
	State        *string `json:"state"         validate:"required,min=2,max=50"`
	Pincode      *string `json:"pincode"       validate:"required,pincode"`
	ContactName  *string `json:"contact_name"  validate:"omitempty,min=2,max=100,personname"`
	ContactPhone *string `json:"contact_phone" validate:"omitempty,phone"`
	IsDefault    *bool   `json:"is_default"`
}

var addressMessages = map[string]string{
	"customer_id.uid":         "Invalid customer ID",
	"label.max":               "Label is too long",
	"address.min":             "Address must be at least 5 characters",
	"address.max":             "Address is too long",
	"city.min":                "City must be at least 2 characters",
	"city.max":                "City name is too long",
	"state.min":               "State must be at least 2 characters",
	"state.max":               "State name is too long",
	"pincode.pincode":         "Pincode must be 6 digits",
	"contact_name.min":        "Name must be at least 2 characters",
	"contact_name.max":        "Name is too long",
	"contact_name.personname": "Name can only contain letters",
	"contact_phone.phone":     "Invalid phone number",
}

// ParseSavedAddress validates a saved-address payload. customerID, when not
// empty, overrides any customer_id in the body.
func (v *Validator) ParseSavedAddress(customerID string, payload []byte) (models.SavedAddress, error) {
	d := &decoder{}
	obj := d.root(payload)
	if obj == nil {
		return models.SavedAddress{}, d.result()
	}
	in := SavedAddressInput{
		CustomerID:   str(d, obj, "", "customer_id"),
		Label:        str(d, obj, "", "label"),
		Address:      str(d, obj, "", "address"),
		City:         str(d, obj, "", "city"),
		State:        str(d, obj, "", "state"),
		Pincode:      str(d, obj, "", "pincode"),
		ContactName:  str(d, obj, "", "contact_name"),
		ContactPhone: str(d, obj, "", "contact_phone"),
		IsDefault:    boolean(d, obj, "", "is_default"),
	}
	if customerID != "" {
		in.CustomerID = &customerID
	}
	normalizePhonePtr(in.ContactPhone)

	v.check(d, in, addressMessages)
	if err := d.result(); err != nil {
		return models.SavedAddress{}, err
	}

	a := models.SavedAddress{
		CustomerID:   deref(in.CustomerID),
		Label:        in.Label,
		Address:      deref(in.Address),
		City:         deref(in.City),
		State:        deref(in.State),
		Pincode:      deref(in.Pincode),
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		IsActive:     true,
	}
	if in.IsDefault != nil {
		a.IsDefault = *in.IsDefault
	}
	return a, nil
}
