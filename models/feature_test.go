package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureGroup_Prefix(t *testing.T) {
	assert.Equal(t, "", GroupRoot.Prefix())
	assert.Equal(t, "/building", GroupBuilding.Prefix())
	assert.Equal(t, "/act25side", GroupAct25Side.Prefix())
}

func TestFeatureGroup_Known(t *testing.T) {
	for _, g := range FeatureGroups {
		assert.True(t, g.Known(), "group %q", g)
	}
	assert.False(t, FeatureGroup("config").Known())
	assert.False(t, FeatureGroup("Building").Known())
}

func TestFeatureGroups_RootIsLast(t *testing.T) {
	assert.Equal(t, GroupRoot, FeatureGroups[len(FeatureGroups)-1])

	seen := make(map[FeatureGroup]struct{}, len(FeatureGroups))
	for _, g := range FeatureGroups {
		_, dup := seen[g]
		assert.False(t, dup, "group %q listed twice", g)
		seen[g] = struct{}{}
	}
}

func TestFeatureRoute_Pattern(t *testing.T) {
	tests := []struct {
		name  string
		route FeatureRoute
		want  string
	}{
		{"named group", FeatureRoute{Group: GroupBuilding, Method: http.MethodPost, Path: "/sync"}, "/building/sync"},
		{"root group", FeatureRoute{Group: GroupRoot, Method: http.MethodGet, Path: "/general/v1/server_time"}, "/general/v1/server_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.route.Pattern())
		})
	}
}
