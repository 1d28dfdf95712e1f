// Package access holds the authorization predicates guarding vacancy,
// offer and rating lifecycles. Every check is a pure read over already
// loaded entities: nil means allow, apperrors.ErrForbidden means the actor
// is known but not entitled, apperrors.ErrNotFound means the entity must
// look non-existent to this actor.
package access

import (
	"github.com/GlebRadaev/worksite/internal/apperrors"
	"github.com/GlebRadaev/worksite/internal/domain"
)

// ViewVacancy decides whether actor may see a vacancy detail.
// applyedApplicantID is the applicant whose offer was accepted on it,
// zero when none. An archived vacancy is indistinguishable from a missing
// one for everybody except the owning company and the hired applicant.
func ViewVacancy(actor domain.Actor, v *domain.Vacancy, applyedApplicantID int) error {
	if v == nil || v.Deleted {
		return apperrors.ErrNotFound
	}
	if v.Archived {
		related := actor.Authenticated &&
			(actor.ID == v.CompanyID || (applyedApplicantID != 0 && actor.ID == applyedApplicantID))
		if !related {
			return apperrors.ErrNotFound
		}
	}
	return nil
}

// ManageVacancy guards viewing a vacancy's offers and deleting it.
func ManageVacancy(actor domain.Actor, v *domain.Vacancy) error {
	if v == nil || v.Archived || v.Deleted {
		return apperrors.ErrNotFound
	}
	if !actor.Authenticated || actor.ID != v.CompanyID {
		return apperrors.ErrForbidden
	}
	return nil
}

// CreateOffer decides whether actor may submit an offer on a vacancy.
// hasExistingOffer reports a prior offer by the same applicant.
func CreateOffer(actor domain.Actor, v *domain.Vacancy, hasExistingOffer bool) error {
	if v == nil || v.Archived || v.Deleted {
		return apperrors.ErrNotFound
	}
	if !actor.Authenticated || actor.IsCompany || hasExistingOffer {
		return apperrors.ErrForbidden
	}
	return nil
}

// WithdrawOffer allows the owning applicant to withdraw a still pending
// offer. Terminal offers fail the same way on every retry.
func WithdrawOffer(actor domain.Actor, o *domain.Offer) error {
	if o == nil {
		return apperrors.ErrNotFound
	}
	if o.Withdrawn || o.Applyed {
		return apperrors.ErrForbidden
	}
	if !actor.Authenticated || actor.ID != o.ApplicantID {
		return apperrors.ErrForbidden
	}
	return nil
}

// ApplyOffer allows the vacancy's company to accept a pending offer on a
// live vacancy.
func ApplyOffer(actor domain.Actor, o *domain.Offer, v *domain.Vacancy) error {
	if o == nil || v == nil {
		return apperrors.ErrNotFound
	}
	if !actor.Authenticated || actor.ID != v.CompanyID {
		return apperrors.ErrForbidden
	}
	if v.Archived || v.Deleted || o.Withdrawn || o.Applyed {
		return apperrors.ErrNotFound
	}
	return nil
}

// Rate allows an applicant with at least one accepted offer against the
// company's vacancies to rate it, once.
func Rate(actor domain.Actor, hasApplyedOffer, alreadyRated bool) error {
	if !actor.Authenticated || actor.IsCompany || !hasApplyedOffer || alreadyRated {
		return apperrors.ErrForbidden
	}
	return nil
}
