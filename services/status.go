package services

import "fmt"

// TargetRole identifies what a deployment target is used for
type TargetRole int

const (
	TargetRoleUnknown TargetRole = iota
	TargetRoleStaging
	TargetRoleProduction
)

func (r TargetRole) String() string {
	switch r {
	case TargetRoleStaging:
		return "staging"
	case TargetRoleProduction:
		return "production"
	default:
		return "unknown"
	}
}

func ParseTargetRole(s string) (TargetRole, error) {
	switch s {
	case "staging":
		return TargetRoleStaging, nil
	case "production":
		return TargetRoleProduction, nil
	default:
		return TargetRoleUnknown, fmt.Errorf("invalid target role: %q", s)
	}
}

// PromotionStatus represents the status of a promotion
type PromotionStatus int

const (
	PromotionStatusUnknown PromotionStatus = iota
	PromotionStatusStarted
	PromotionStatusCompleted
	PromotionStatusFailed
)

func (s PromotionStatus) String() string {
	switch s {
	case PromotionStatusStarted:
		return "started"
	case PromotionStatusCompleted:
		return "completed"
	case PromotionStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func ParsePromotionStatus(s string) (PromotionStatus, error) {
	switch s {
	case "started":
		return PromotionStatusStarted, nil
	case "completed":
		return PromotionStatusCompleted, nil
	case "failed":
		return PromotionStatusFailed, nil
	case "unknown":
		return PromotionStatusUnknown, nil
	default:
		return PromotionStatusUnknown, fmt.Errorf("invalid promotion status: %q", s)
	}
}

// BuildStatus represents the status of a site build
type BuildStatus int

const (
	BuildStatusUnknown BuildStatus = iota
	BuildStatusStarted
	BuildStatusCompleted
	BuildStatusFailed
)

func (s BuildStatus) String() string {
	switch s {
	case BuildStatusStarted:
		return "started"
	case BuildStatusCompleted:
		return "completed"
	case BuildStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func ParseBuildStatus(s string) (BuildStatus, error) {
	switch s {
	case "started":
		return BuildStatusStarted, nil
	case "completed":
		return BuildStatusCompleted, nil
	case "failed":
		return BuildStatusFailed, nil
	case "unknown":
		return BuildStatusUnknown, nil
	default:
		return BuildStatusUnknown, fmt.Errorf("invalid build status: %q", s)
	}
}
