// Package navpolicy declares the external interfaces the navigation core
// consumes but never implements: account-type/wealth signals
// (ResourcePolicy), skill/quest/item checks (PlayerRequirements), and scene
// access (ClientScene). It also defines Requirement, the closed set of
// predicates an edge may carry.
//
// These interfaces are a deliberately small capability surface wired
// explicitly at call sites, never a concrete struct the core owns.
package navpolicy
