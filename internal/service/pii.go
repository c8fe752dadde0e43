package service

import (
	"storefront/internal/models"
)

// sealable maps a JSON field name to the order field holding it.
var sealable = map[string]func(o *models.Order) *string{
	"customer_email": func(o *models.Order) *string { return o.CustomerEmail },
	"customer_phone": func(o *models.Order) *string { return &o.CustomerPhone },
}

func (s *Service) fieldsOf(o *models.Order) map[string]any {
	record := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		if p := sealable[f](o); p != nil {
			record[f] = *p
		}
	}
	return record
}

func (s *Service) assign(o *models.Order, record map[string]any) {
	for _, f := range s.fields {
		p := sealable[f](o)
		if v, ok := record[f].(string); ok && p != nil {
			*p = v
		}
	}
}

// seal returns a copy of o with the sensitive fields encrypted.
func (s *Service) seal(o models.Order) (models.Order, error) {
	if s.cipher == nil || len(s.fields) == 0 {
		return o, nil
	}
	o = o.Clone()
	sealed, err := s.cipher.EncryptFields(s.fieldsOf(&o), s.fields)
	if err != nil {
		return models.Order{}, err
	}
	s.assign(&o, sealed)
	return o, nil
}

// open decrypts the sensitive fields of a stored order. Fields that fail to
// decrypt keep their stored value.
func (s *Service) open(o models.Order) models.Order {
	if s.cipher == nil || len(s.fields) == 0 {
		return o
	}
	o = o.Clone()
	opened, failures := s.cipher.DecryptFields(s.fieldsOf(&o), s.fields)
	if len(failures) > 0 {
		decryptFailures.Add(float64(len(failures)))
	}
	s.assign(&o, opened)
	return o
}
