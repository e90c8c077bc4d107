package domain

import "fmt"

// StandardProfile identifies the regulatory threshold set in effect.
// Profiles are swappable without touching validator logic.
type StandardProfile string

const (
	ProfileNETA      StandardProfile = "neta"
	ProfileMicrosoft StandardProfile = "microsoft"
)

// ValidProfiles enumerates all recognized standard profiles.
var ValidProfiles = []StandardProfile{ProfileNETA, ProfileMicrosoft}

// ParseProfile converts a string to a StandardProfile. An empty string
// selects the NETA default.
func ParseProfile(s string) (StandardProfile, error) {
	switch s {
	case "neta", "":
		return ProfileNETA, nil
	case "microsoft":
		return ProfileMicrosoft, nil
	default:
		return "", fmt.Errorf("unknown standard profile %q (valid: neta, microsoft)", s)
	}
}

func (p StandardProfile) String() string { return string(p) }
