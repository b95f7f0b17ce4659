package models

import "github.com/pkg/errors"

type VacancyStatus string

const (
	VacancyStatusDraft  VacancyStatus = "draft"
	VacancyStatusOpen   VacancyStatus = "open"
	VacancyStatusClosed VacancyStatus = "closed"
)

var vacancyStatuses = map[VacancyStatus]bool{
	VacancyStatusDraft:  true,
	VacancyStatusOpen:   true,
	VacancyStatusClosed: true,
}

func (s VacancyStatus) Validate() error {
	if !vacancyStatuses[s] {
		return errors.Errorf("%q is not a valid choice", string(s))
	}
	return nil
}
