package models

import (
	"context"
	"encoding/json"
)

// FeatureGroup is the first path segment under which a gameplay feature's
// routes are mounted. The root group mounts routes directly under "/".
type FeatureGroup string

const (
	GroupRoot         FeatureGroup = ""
	GroupApp          FeatureGroup = "app"
	GroupAccount      FeatureGroup = "account"
	GroupActivity     FeatureGroup = "activity"
	GroupAct25Side    FeatureGroup = "act25side"
	GroupAprilFool    FeatureGroup = "aprilFool"
	GroupBuilding     FeatureGroup = "building"
	GroupBusinessCard FeatureGroup = "businessCard"
	GroupCampaignV2   FeatureGroup = "campaignV2"
	GroupChar         FeatureGroup = "char"
	GroupCharBuild    FeatureGroup = "charBuild"
	GroupCrisisV2     FeatureGroup = "crisisV2"
	GroupDeepSea      FeatureGroup = "deepSea"
	GroupOnline       FeatureGroup = "online"
	GroupQuest        FeatureGroup = "quest"
	GroupRetro        FeatureGroup = "retro"
	GroupShop         FeatureGroup = "shop"
	GroupSocial       FeatureGroup = "social"
	GroupStory        FeatureGroup = "story"
	GroupStoryReview  FeatureGroup = "storyreview"
	GroupU8           FeatureGroup = "u8"
	GroupUser         FeatureGroup = "user"
	GroupDebug        FeatureGroup = "debug"
)

// FeatureGroups lists every group in mount order. The root group is last so
// that its routes never shadow a named group.
var FeatureGroups = []FeatureGroup{
	GroupApp,
	GroupAccount,
	GroupActivity,
	GroupAct25Side,
	GroupAprilFool,
	GroupBuilding,
	GroupBusinessCard,
	GroupCampaignV2,
	GroupChar,
	GroupCharBuild,
	GroupCrisisV2,
	GroupDeepSea,
	GroupOnline,
	GroupQuest,
	GroupRetro,
	GroupShop,
	GroupSocial,
	GroupStory,
	GroupStoryReview,
	GroupU8,
	GroupUser,
	GroupDebug,
	GroupRoot,
}

// Prefix returns the mount prefix of the group, "" for the root group.
func (g FeatureGroup) Prefix() string {
	if g == GroupRoot {
		return ""
	}
	return "/" + string(g)
}

// Known reports whether g is one of [FeatureGroups].
func (g FeatureGroup) Known() bool {
	for _, known := range FeatureGroups {
		if g == known {
			return true
		}
	}
	return false
}

// FeatureHandleFunc handles one gameplay call. body is always a valid JSON
// value ("null" for an empty request body); the result is written as JSON.
type FeatureHandleFunc func(ctx context.Context, body json.RawMessage) (any, error)

// FeatureRoute binds a method and a group-relative path to a handler.
type FeatureRoute struct {
	Group  FeatureGroup
	Method string
	Path   string
	Handle FeatureHandleFunc
}

// Pattern returns the absolute route pattern, e.g. "/building/sync".
func (r FeatureRoute) Pattern() string {
	return r.Group.Prefix() + r.Path
}
