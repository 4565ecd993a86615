package navpolicy

// Requirement is a predicate over player state that must hold for an edge
// to be admissible. It is a closed set of concrete types; each implements
// Satisfied against a PlayerRequirements snapshot.
type Requirement interface {
	Satisfied(p PlayerRequirements) bool
}

// MagicLevel requires at least the given Magic level.
type MagicLevel struct{ Level int }

func (r MagicLevel) Satisfied(p PlayerRequirements) bool { return p.MagicLevel() >= r.Level }

// AgilityLevel requires at least the given Agility level.
type AgilityLevel struct{ Level int }

func (r AgilityLevel) Satisfied(p PlayerRequirements) bool { return p.AgilityLevel() >= r.Level }

// CombatLevel requires at least the given combat level.
type CombatLevel struct{ Level int }

func (r CombatLevel) Satisfied(p PlayerRequirements) bool { return p.CombatLevel() >= r.Level }

// Skill requires at least Level in the named skill.
type Skill struct {
	Name  string
	Level int
}

func (r Skill) Satisfied(p PlayerRequirements) bool { return p.SkillLevel(r.Name) >= r.Level }

// Quest requires the named quest to be in the given completion state. State
// is a simple string ("COMPLETED", "STARTED", ...); only "COMPLETED" is
// checked against IsQuestCompleted; other states are reserved for callers
// with a richer PlayerRequirements implementation and are treated as
// unsatisfied here. Unknown state must never open a gated route.
type Quest struct {
	Name  string
	State string
}

func (r Quest) Satisfied(p PlayerRequirements) bool {
	if r.State != "COMPLETED" {
		return false
	}
	return p.IsQuestCompleted(r.Name)
}

// Item requires Qty of item ID; Consumed is metadata for the caller that
// actually spends the item (the core never mutates inventory).
type Item struct {
	ID       string
	Qty      int
	Consumed bool
}

func (r Item) Satisfied(p PlayerRequirements) bool { return p.HasItem(r.ID, r.Qty) }

// Gold requires at least Amount in total gold (cash + bank).
type Gold struct{ Amount int64 }

func (r Gold) Satisfied(p PlayerRequirements) bool { return p.TotalGold() >= r.Amount }

// Runes requires Qty of the named rune; checked via HasItem since runes are
// modeled as items with a name-keyed ID in this module's scope.
type Runes struct {
	Name string
	Qty  int
}

func (r Runes) Satisfied(p PlayerRequirements) bool { return p.HasItem(r.Name, r.Qty) }

// IronmanRestriction excludes an edge for a given ironman variant. Kind is
// one of "ironman", "hardcore", "ultimate".
type IronmanRestriction struct{ Kind string }

func (r IronmanRestriction) Satisfied(p PlayerRequirements) bool {
	switch r.Kind {
	case "ironman":
		return !p.IsIronman()
	case "hardcore":
		return !p.IsHardcore()
	case "ultimate":
		return !p.IsUltimate()
	default:
		return true
	}
}

// Favour requires at least Pct favour with the named house. Favour is read
// through SkillLevel with a "favour:"-prefixed name; an implementation that
// does not track favour reports 0, which keeps the edge inadmissible —
// unknown state must never open a gated route.
type Favour struct {
	House string
	Pct   float64
}

func (r Favour) Satisfied(p PlayerRequirements) bool {
	return float64(p.SkillLevel("favour:"+r.House)) >= r.Pct
}

// AllSatisfied conjuncts every Requirement in reqs.
func AllSatisfied(reqs []Requirement, p PlayerRequirements) bool {
	for _, r := range reqs {
		if !r.Satisfied(p) {
			return false
		}
	}
	return true
}
