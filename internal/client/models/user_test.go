package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_HasRole(t *testing.T) {
	u := User{Roles: []Role{RoleManager, RoleUser}}

	assert.True(t, u.HasRole(RoleManager))
	assert.True(t, u.HasRole(RoleUser))
	assert.False(t, u.HasRole(RoleAdmin))
}

func TestUser_Clone_IsIndependent(t *testing.T) {
	u := User{
		ID:         "u1",
		Roles:      []Role{RoleUser},
		GroupIDs:   []string{"g1"},
		CompanyIDs: []string{"acme"},
	}

	c := u.Clone()
	c.Roles[0] = RoleAdmin
	c.GroupIDs[0] = "g2"
	c.CompanyIDs[0] = "globex"

	assert.Equal(t, []Role{RoleUser}, u.Roles)
	assert.Equal(t, []string{"g1"}, u.GroupIDs)
	assert.Equal(t, []string{"acme"}, u.CompanyIDs)
}

func TestPreferences_Scale(t *testing.T) {
	tests := []struct {
		size FontSize
		want float64
	}{
		{FontSizeSmall, 14.4},
		{FontSizeNormal, 16},
		{FontSizeLarge, 18.4},
		{FontSize("bogus"), 16},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			p := Preferences{FontSize: tt.size}
			assert.InDelta(t, tt.want, p.Scale(16), 0.0001)
		})
	}
}

func TestUserPatch_IsEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())

	name := "x"
	assert.False(t, UserPatch{Name: &name}.IsEmpty())
	assert.False(t, UserPatch{GroupIDs: []string{"g1"}}.IsEmpty())
}
