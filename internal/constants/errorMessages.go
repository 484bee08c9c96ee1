package constants

const (
	MsgInvalidJSON       = "Invalid JSON body"
	MsgInvalidID         = "Invalid id in path"
	MsgUnauthorized      = "Unauthorized"
	MsgForbidden         = "Forbidden: missing permission"
	MsgInternalError     = "Internal server error"
	MsgInvalidLogin      = "Invalid username or password"
	MsgInactiveAccount   = "Account is deactivated"
	MsgTooManyRequests   = "Too many requests"
	MsgOwnerCapacity     = "A business may have at most 3 active owners"
	MsgLastOwner         = "A business must keep at least one active owner"
	MsgMakerspaceTaken   = "Business already has an active makerspace assignment"
	MsgStaleVersion      = "Record was modified by someone else; reload and retry"
	MsgDuplicateTracking = "A tracking record already exists for this business and period"
)
