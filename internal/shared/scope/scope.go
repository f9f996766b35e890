// Package scope is the access-scope resolver shared by every operation that
// filters or admits records by caller identity. A scope is derived per call
// from (callerID, role); it carries no state between requests.
package scope

import (
	"context"
	"strings"
)

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleCompany Role = "COMPANY"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole normalizes a raw role value. Unknown values stay as-is and
// resolve to a Deny scope.
func ParseRole(raw string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(raw)))
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCompany, RoleAdmin:
		return true
	default:
		return false
	}
}

type Kind int

const (
	KindDeny Kind = iota
	KindAllowAll
	KindOwnedByCompany
	KindAuthoredByStudent
)

// Scope is the visibility decision for one caller: everything, records owned
// by one company, records authored by one student, or nothing.
type Scope struct {
	Kind      Kind
	CompanyID string
	StudentID string
}

// Ownership is the resolved ownership chain of a single record
// (application -> internship -> company), reduced to the two ids an
// authorization decision needs.
type Ownership struct {
	StudentID string
	CompanyID string
}

// CompanyDirectory resolves the company linked to an identity. The second
// return is false when the identity has no company profile.
type CompanyDirectory interface {
	CompanyIDForIdentity(ctx context.Context, identityID string) (string, bool, error)
}

// Resolve derives the caller's scope. COMPANY callers without a company
// profile resolve to Deny rather than an error: the caller surfaces
// Forbidden for empty scopes.
func Resolve(ctx context.Context, callerID string, role Role, companies CompanyDirectory) (Scope, error) {
	switch role {
	case RoleAdmin:
		return Scope{Kind: KindAllowAll}, nil
	case RoleCompany:
		if companies == nil {
			return Scope{Kind: KindDeny}, nil
		}
		companyID, found, err := companies.CompanyIDForIdentity(ctx, strings.TrimSpace(callerID))
		if err != nil {
			return Scope{}, err
		}
		if !found {
			return Scope{Kind: KindDeny}, nil
		}
		return Scope{Kind: KindOwnedByCompany, CompanyID: companyID}, nil
	case RoleStudent:
		return Scope{Kind: KindAuthoredByStudent, StudentID: strings.TrimSpace(callerID)}, nil
	default:
		return Scope{Kind: KindDeny}, nil
	}
}

// Admits reports whether a record with the given ownership chain is visible
// under the scope.
func (s Scope) Admits(o Ownership) bool {
	switch s.Kind {
	case KindAllowAll:
		return true
	case KindOwnedByCompany:
		return s.CompanyID != "" && o.CompanyID == s.CompanyID
	case KindAuthoredByStudent:
		return s.StudentID != "" && o.StudentID == s.StudentID
	default:
		return false
	}
}

func (s Scope) Denied() bool {
	return s.Kind == KindDeny
}
