//go:build wireinject
// +build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(wire.FieldsOf(new(*Services),
	"AppealManager",
	"AuditTrail",
	"ContentModerator",
	"DecisionCounter",
	"Notification",
	"PendingCounter",
	"RBAC",
	"ReportManager",
	"SanctionAdmin",
	"SanctionGuard",
	"Visibility",
))
