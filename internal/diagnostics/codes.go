package diagnostics

// Error codes for the rivet compiler
const (
	// Registration errors (R prefix)
	ErrDuplicateSymbol          = "R0001"
	ErrDuplicateVariant         = "R0002"
	ErrDuplicateField           = "R0003"
	ErrInvalidAssociatedMember  = "R0004"
	ErrInvalidExtensionTarget   = "R0005"
	ErrInvalidComptimeCondition = "R0006"
)
