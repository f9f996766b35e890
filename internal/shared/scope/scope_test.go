package scope

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticDirectory map[string]string

func (d staticDirectory) CompanyIDForIdentity(_ context.Context, identityID string) (string, bool, error) {
	companyID, ok := d[identityID]
	return companyID, ok, nil
}

type failingDirectory struct{}

func (failingDirectory) CompanyIDForIdentity(context.Context, string) (string, bool, error) {
	return "", false, errors.New("directory unavailable")
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole(" admin "))
	assert.Equal(t, RoleStudent, ParseRole("STUDENT"))
	assert.True(t, ParseRole("company").Valid())
	assert.False(t, ParseRole("moderator").Valid())
	assert.False(t, ParseRole("").Valid())
}

func TestResolveAdminAllowsAll(t *testing.T) {
	s, err := Resolve(context.Background(), "admin-1", RoleAdmin, staticDirectory{})
	assert.NoError(t, err)
	assert.Equal(t, KindAllowAll, s.Kind)
	assert.True(t, s.Admits(Ownership{StudentID: "anyone", CompanyID: "anything"}))
}

func TestResolveCompanyScopedToOwnCompany(t *testing.T) {
	dir := staticDirectory{"identity-7": "company-7"}

	s, err := Resolve(context.Background(), "identity-7", RoleCompany, dir)
	assert.NoError(t, err)
	assert.Equal(t, KindOwnedByCompany, s.Kind)
	assert.Equal(t, "company-7", s.CompanyID)

	assert.True(t, s.Admits(Ownership{StudentID: "s-1", CompanyID: "company-7"}))
	assert.False(t, s.Admits(Ownership{StudentID: "s-1", CompanyID: "company-8"}))
}

func TestResolveCompanyWithoutProfileDenied(t *testing.T) {
	s, err := Resolve(context.Background(), "identity-unlinked", RoleCompany, staticDirectory{})
	assert.NoError(t, err)
	assert.True(t, s.Denied())
	assert.False(t, s.Admits(Ownership{CompanyID: "company-7"}))
}

func TestResolveCompanyDirectoryError(t *testing.T) {
	_, err := Resolve(context.Background(), "identity-7", RoleCompany, failingDirectory{})
	assert.Error(t, err)
}

func TestResolveStudentScopedToSelf(t *testing.T) {
	s, err := Resolve(context.Background(), "student-3", RoleStudent, nil)
	assert.NoError(t, err)
	assert.Equal(t, KindAuthoredByStudent, s.Kind)

	assert.True(t, s.Admits(Ownership{StudentID: "student-3", CompanyID: "company-1"}))
	assert.False(t, s.Admits(Ownership{StudentID: "student-4", CompanyID: "company-1"}))
}

func TestResolveUnknownRoleDenied(t *testing.T) {
	s, err := Resolve(context.Background(), "caller", ParseRole("auditor"), staticDirectory{})
	assert.NoError(t, err)
	assert.True(t, s.Denied())
}

func TestEmptyScopeValuesNeverAdmit(t *testing.T) {
	// A scoped kind with an empty id must not admit records whose
	// ownership fields are also empty.
	assert.False(t, Scope{Kind: KindOwnedByCompany}.Admits(Ownership{}))
	assert.False(t, Scope{Kind: KindAuthoredByStudent}.Admits(Ownership{}))
}
