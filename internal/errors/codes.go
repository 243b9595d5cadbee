// Package errors provides centralized error code definitions for the prover.
// All error codes follow a consistent taxonomy for machine-readable reporting.
package errors

// Error code constants organized by phase.
// Each constant represents a specific error condition with structured reporting.
const (
	// ============================================================================
	// Lexer errors (LEX###)
	// ============================================================================

	// LEX001 indicates an unterminated quoted literal
	LEX001 = "LEX001"

	// LEX002 indicates an unterminated block comment
	LEX002 = "LEX002"

	// LEX003 indicates an invalid escape sequence inside a quoted literal
	LEX003 = "LEX003"

	// LEX004 indicates a malformed numeric literal (bad rational/real)
	LEX004 = "LEX004"

	// LEX005 indicates a character outside the TPTP token alphabet
	LEX005 = "LEX005"

	// ============================================================================
	// Parser errors (PAR###)
	// ============================================================================

	// PAR001 indicates an unexpected token was encountered during parsing
	PAR001 = "PAR001"

	// PAR002 indicates a missing closing delimiter (paren, bracket, brace)
	PAR002 = "PAR002"

	// PAR003 indicates an invalid annotated-formula header (language/role/name)
	PAR003 = "PAR003"

	// PAR004 indicates an invalid include directive
	PAR004 = "PAR004"

	// PAR005 indicates an invalid annotation tuple
	PAR005 = "PAR005"

	// PAR006 indicates an unknown TPTP dialect keyword
	PAR006 = "PAR006"

	// PAR007 indicates a malformed quantifier binding list
	PAR007 = "PAR007"

	// ============================================================================
	// Signature table errors (SIG###)
	// ============================================================================

	// SIG001 indicates a duplicate constant declaration with a conflicting type
	SIG001 = "SIG001"

	// SIG002 indicates a lookup of an identifier that does not exist
	SIG002 = "SIG002"

	// SIG003 indicates a definition referencing an unknown constant
	SIG003 = "SIG003"

	// ============================================================================
	// Type/kind errors (TYP###)
	// ============================================================================

	// TYP001 indicates the two sides of an equation have unequal types
	TYP001 = "TYP001"

	// TYP002 indicates a partial binding's argument types could not be formed
	TYP002 = "TYP002"

	// TYP003 indicates a kind mismatch between a type variable and its binding
	TYP003 = "TYP003"

	// ============================================================================
	// Unification structural errors (UNI###)
	// ============================================================================

	// UNI001 indicates an ill-formed spine (a head that is itself an application)
	UNI001 = "UNI001"

	// UNI002 indicates a bound index escaping its enclosing binder depth
	UNI002 = "UNI002"
)

// ErrorInfo describes a single error code's metadata.
type ErrorInfo struct {
	Code     string
	Phase    string
	Category string
	Summary  string
}

// ErrorRegistry maps every known code to its metadata.
var ErrorRegistry = map[string]ErrorInfo{
	LEX001: {LEX001, "lexer", "literal", "Unterminated quoted literal"},
	LEX002: {LEX002, "lexer", "comment", "Unterminated block comment"},
	LEX003: {LEX003, "lexer", "literal", "Invalid escape sequence"},
	LEX004: {LEX004, "lexer", "number", "Malformed numeric literal"},
	LEX005: {LEX005, "lexer", "alphabet", "Character outside TPTP token alphabet"},

	PAR001: {PAR001, "parser", "token", "Unexpected token"},
	PAR002: {PAR002, "parser", "delimiter", "Missing closing delimiter"},
	PAR003: {PAR003, "parser", "header", "Invalid annotated-formula header"},
	PAR004: {PAR004, "parser", "include", "Invalid include directive"},
	PAR005: {PAR005, "parser", "annotation", "Invalid annotation tuple"},
	PAR006: {PAR006, "parser", "dialect", "Unknown TPTP dialect keyword"},
	PAR007: {PAR007, "parser", "quantifier", "Malformed quantifier binding list"},

	SIG001: {SIG001, "signature", "conflict", "Duplicate constant with conflicting type"},
	SIG002: {SIG002, "signature", "lookup", "Unknown identifier"},
	SIG003: {SIG003, "signature", "definition", "Definition references unknown constant"},

	TYP001: {TYP001, "typecheck", "equation", "Unequal types in equation"},
	TYP002: {TYP002, "typecheck", "binding", "Partial binding type mismatch"},
	TYP003: {TYP003, "typecheck", "kind", "Kind mismatch"},

	UNI001: {UNI001, "unify", "spine", "Ill-formed spine"},
	UNI002: {UNI002, "unify", "index", "Bound index escapes binder depth"},
}

// GetErrorInfo returns information about an error code.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, exists := ErrorRegistry[code]
	return info, exists
}

// IsLexerError checks if the error code is a lexer error.
func IsLexerError(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "lexer"
}

// IsParserError checks if the error code is a parser error.
func IsParserError(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "parser"
}

// IsSignatureError checks if the error code is a signature-table error.
func IsSignatureError(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "signature"
}

// IsTypeError checks if the error code is a type/kind checking error.
func IsTypeError(code string) bool {
	info, exists := GetErrorInfo(code)
	return exists && info.Phase == "typecheck"
}
