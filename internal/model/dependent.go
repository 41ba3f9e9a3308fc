package model

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type DisabilityLevel string

const (
	DisabilityNone    DisabilityLevel = "none"
	DisabilityRegular DisabilityLevel = "regular"
	DisabilitySpecial DisabilityLevel = "special"
)

// SpouseAgeCategory is the two-valued age split used for a spouse.
type SpouseAgeCategory string

const (
	SpouseUnder70 SpouseAgeCategory = "under70"
	Spouse70Plus  SpouseAgeCategory = "70plus"
)

// DependentAgeCategory is the five-valued age split used for non-spouse
// relatives.
type DependentAgeCategory string

const (
	AgeUnder16 DependentAgeCategory = "under16"
	Age16To18  DependentAgeCategory = "16to18"
	Age19To22  DependentAgeCategory = "19to22"
	Age23To69  DependentAgeCategory = "23to69"
	Age70Plus  DependentAgeCategory = "70plus"
)

const (
	RelationshipSpouse = "spouse"
	RelationshipChild  = "child"
	RelationshipParent = "parent"
	RelationshipOther  = "other"
)

// Dependent is the closed union of Spouse and Relative. The two variants
// carry different age category types, so a spouse record can never hold a
// five-valued relative age.
type Dependent interface {
	// Profile returns the relationship-independent slice of the record.
	Profile() DependentProfile
	isDependent()
}

// DependentProfile is the part of a dependent record that every variant
// carries.
type DependentProfile struct {
	ID           string
	Income       PersonIncome
	Disability   DisabilityLevel
	IsCohabiting bool
}

type Spouse struct {
	ID           string            `json:"id"`
	AgeCategory  SpouseAgeCategory `json:"age_category"`
	Income       PersonIncome      `json:"income"`
	Disability   DisabilityLevel   `json:"disability"`
	IsCohabiting bool              `json:"is_cohabiting"`
}

func (s Spouse) Profile() DependentProfile {
	return DependentProfile{ID: s.ID, Income: s.Income, Disability: s.Disability, IsCohabiting: s.IsCohabiting}
}

func (Spouse) isDependent() {}

func (s Spouse) MarshalJSON() ([]byte, error) {
	type alias Spouse
	return json.Marshal(struct {
		Relationship string `json:"relationship"`
		alias
	}{RelationshipSpouse, alias(s)})
}

// Relative is any non-spouse dependent: child, parent or other relative.
type Relative struct {
	ID           string               `json:"id"`
	Relationship string               `json:"relationship"`
	AgeCategory  DependentAgeCategory `json:"age_category"`
	Income       PersonIncome         `json:"income"`
	Disability   DisabilityLevel      `json:"disability"`
	IsCohabiting bool                 `json:"is_cohabiting"`
}

func (r Relative) Profile() DependentProfile {
	return DependentProfile{ID: r.ID, Income: r.Income, Disability: r.Disability, IsCohabiting: r.IsCohabiting}
}

func (Relative) isDependent() {}

// DependentList decodes a JSON array of dependent records, dispatching each
// element on its "relationship" tag.
type DependentList []Dependent

func (l *DependentList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	out := make(DependentList, 0, len(raws))
	for i, raw := range raws {
		var tag struct {
			Relationship string `json:"relationship"`
		}
		if err := json.Unmarshal(raw, &tag); err != nil {
			return fmt.Errorf("dependent %d: %w", i, err)
		}

		switch tag.Relationship {
		case RelationshipSpouse:
			var s Spouse
			if err := json.Unmarshal(raw, &s); err != nil {
				return fmt.Errorf("dependent %d: %w", i, err)
			}
			out = append(out, s)
		case RelationshipChild, RelationshipParent, RelationshipOther:
			var r Relative
			if err := json.Unmarshal(raw, &r); err != nil {
				return fmt.Errorf("dependent %d: %w", i, err)
			}
			out = append(out, r)
		default:
			return fmt.Errorf("dependent %d: unknown relationship %q", i, tag.Relationship)
		}
	}

	*l = out
	return nil
}
