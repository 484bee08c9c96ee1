package constants

import "time"

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixDashboard   CachePrefix = "DASHBOARD_"
	CachePrefixPermissions CachePrefix = "PERMS_"
)

const (
	MaxActiveOwners = 3
	MinActiveOwners = 1

	MinScore = 1
	MaxScore = 5

	// MoneyTolerance bounds the disagreement allowed between a client-supplied
	// derived value and the server-computed one.
	MoneyTolerance = 0.01

	DefaultPageSize = 50
	MaxPageSize     = 200

	DBStatementTimeout = 10 * time.Second
)
