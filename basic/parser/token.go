package parser

// Span is a byte range into the source text: offset plus length.
type Span struct {
	Offset int
	Length int
}

// End returns the first byte offset past the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// SyntaxKind is a single flat tag space shared by composite nodes and
// tokens, so that clients can query "does this subtree contain kind K"
// uniformly regardless of whether K is a statement or a keyword.
type SyntaxKind int

const (
	// Root node of a parsed unit.
	KindRoot SyntaxKind = iota

	// Statement nodes
	KindSubStatement
	KindFunctionStatement
	KindPropertyStatement
	KindDeclareStatement
	KindDimStatement
	KindReDimStatement
	KindConstStatement
	KindTypeStatement
	KindEnumStatement
	KindIfStatement
	KindElseIfClause
	KindElseClause
	KindForStatement
	KindForEachStatement
	KindWhileStatement
	KindDoStatement
	KindSelectCaseStatement
	KindCaseClause
	KindCaseElseClause
	KindWithStatement
	KindCallStatement
	KindSetStatement
	KindLetStatement
	KindAssignmentStatement
	KindGotoStatement
	KindGoSubStatement
	KindReturnStatement
	KindResumeStatement
	KindExitStatement
	KindOnErrorStatement
	KindOnGoToStatement
	KindLabelStatement
	KindAttributeStatement
	KindOptionStatement
	// KindKeywordStatement covers the keyword-introduced library
	// statements (Open, Print, Kill, ...) that share one flat shape:
	// the keyword followed by its operands up to end of line.
	KindKeywordStatement

	// Expression nodes
	KindBinaryExpression
	KindUnaryExpression
	KindLiteralExpression
	KindIdentifierExpression
	KindMemberAccessExpression
	KindCallExpression
	KindParenthesizedExpression
	KindNewExpression
	KindAddressOfExpression
	KindTypeOfExpression

	// Other structural nodes
	KindArgumentList
	KindArgument
	KindParameterList
	KindParameter
	KindAsClause
	KindCaseTest
	KindEnumMember
	KindTypeMember
	KindStatementList

	// KindUnknown wraps tokens skipped during error recovery so that no
	// input text is lost even across failures.
	KindUnknown

	// Trivia tokens
	KindWhitespace
	KindNewline
	KindLineContinuation
	KindEndOfLineComment
	KindRemComment

	// Literal and identifier tokens
	KindIdentifier
	KindStringLiteral
	KindIntegerLiteral
	KindLongLiteral
	KindSingleLiteral
	KindDoubleLiteral
	KindCurrencyLiteral
	KindDateLiteral

	// Keyword tokens
	KindAccessKeyword
	KindAddressOfKeyword
	KindAliasKeyword
	KindAndKeyword
	KindAnyKeyword
	KindAppActivateKeyword
	KindAppendKeyword
	KindAsKeyword
	KindAttributeKeyword
	KindBaseKeyword
	KindBeepKeyword
	KindBeginKeyword
	KindBinaryKeyword
	KindBooleanKeyword
	KindByRefKeyword
	KindByteKeyword
	KindByValKeyword
	KindCallKeyword
	KindCaseKeyword
	KindChDirKeyword
	KindChDriveKeyword
	KindClassKeyword
	KindCloseKeyword
	KindCompareKeyword
	KindConstKeyword
	KindCurrencyKeyword
	KindDatabaseKeyword
	KindDateKeyword
	KindDecimalKeyword
	KindDeclareKeyword
	KindDefBoolKeyword
	KindDefByteKeyword
	KindDefCurKeyword
	KindDefDateKeyword
	KindDefDblKeyword
	KindDefDecKeyword
	KindDefIntKeyword
	KindDefLngKeyword
	KindDefObjKeyword
	KindDefSngKeyword
	KindDefStrKeyword
	KindDefVarKeyword
	KindDeleteSettingKeyword
	KindDimKeyword
	KindDoKeyword
	KindDoubleKeyword
	KindEachKeyword
	KindElseIfKeyword
	KindElseKeyword
	KindEmptyKeyword
	KindEndKeyword
	KindEnumKeyword
	KindEqvKeyword
	KindEraseKeyword
	KindErrorKeyword
	KindEventKeyword
	KindExitKeyword
	KindExplicitKeyword
	KindFalseKeyword
	KindFileCopyKeyword
	KindForKeyword
	KindFriendKeyword
	KindFunctionKeyword
	KindGetKeyword
	KindGoSubKeyword
	KindGotoKeyword
	KindIfKeyword
	KindImpKeyword
	KindImplementsKeyword
	KindInKeyword
	KindInputKeyword
	KindIntegerKeyword
	KindIsKeyword
	KindKillKeyword
	KindLenKeyword
	KindLetKeyword
	KindLibKeyword
	KindLikeKeyword
	KindLineKeyword
	KindLoadKeyword
	KindLockKeyword
	KindLongKeyword
	KindLoopKeyword
	KindLSetKeyword
	KindMeKeyword
	KindMidBKeyword
	KindMidKeyword
	KindMkDirKeyword
	KindModKeyword
	KindModuleKeyword
	KindNameKeyword
	KindNewKeyword
	KindNextKeyword
	KindNotKeyword
	KindNothingKeyword
	KindNullKeyword
	KindObjectKeyword
	KindOffKeyword
	KindOnKeyword
	KindOpenKeyword
	KindOptionalKeyword
	KindOptionKeyword
	KindOrKeyword
	KindOutputKeyword
	KindParamArrayKeyword
	KindPreserveKeyword
	KindPrintKeyword
	KindPrivateKeyword
	KindPropertyKeyword
	KindPublicKeyword
	KindPutKeyword
	KindRaiseEventKeyword
	KindRandomizeKeyword
	KindRandomKeyword
	KindReadKeyword
	KindReDimKeyword
	KindResetKeyword
	KindResumeKeyword
	KindReturnKeyword
	KindRmDirKeyword
	KindRSetKeyword
	KindSavePictureKeyword
	KindSaveSettingKeyword
	KindSeekKeyword
	KindSelectKeyword
	KindSendKeysKeyword
	KindSetAttrKeyword
	KindSetKeyword
	KindSingleKeyword
	KindStaticKeyword
	KindStepKeyword
	KindStopKeyword
	KindStringKeyword
	KindSubKeyword
	KindTextKeyword
	KindThenKeyword
	KindTimeKeyword
	KindToKeyword
	KindTrueKeyword
	KindTypeKeyword
	KindTypeOfKeyword
	KindUnloadKeyword
	KindUnlockKeyword
	KindUntilKeyword
	KindVariantKeyword
	KindVersionKeyword
	KindWendKeyword
	KindWhileKeyword
	KindWidthKeyword
	KindWithEventsKeyword
	KindWithKeyword
	KindWriteKeyword
	KindXorKeyword

	// Operator and punctuation tokens
	KindDollarSign
	KindUnderscore
	KindAmpersand
	KindPercent
	KindOctothorpe
	KindAtSign
	KindExclamationMark
	KindLeftParenthesis
	KindRightParenthesis
	KindLeftCurlyBrace
	KindRightCurlyBrace
	KindLeftSquareBracket
	KindRightSquareBracket
	KindComma
	KindSemicolon
	KindEqualityOperator
	KindInequalityOperator
	KindLessThanOrEqualOperator
	KindGreaterThanOrEqualOperator
	KindLessThanOperator
	KindGreaterThanOperator
	KindMultiplicationOperator
	KindSubtractionOperator
	KindAdditionOperator
	KindDivisionOperator
	KindBackwardSlashOperator
	KindPeriodOperator
	KindColonOperator
	KindExponentiationOperator

	// End of input marker; always the last token of a stream.
	KindEndOfFile

	kindCount
)

var syntaxKindNames = map[SyntaxKind]string{
	KindRoot:                       "Root",
	KindSubStatement:               "SubStatement",
	KindFunctionStatement:          "FunctionStatement",
	KindPropertyStatement:          "PropertyStatement",
	KindDeclareStatement:           "DeclareStatement",
	KindDimStatement:               "DimStatement",
	KindReDimStatement:             "ReDimStatement",
	KindConstStatement:             "ConstStatement",
	KindTypeStatement:              "TypeStatement",
	KindEnumStatement:              "EnumStatement",
	KindIfStatement:                "IfStatement",
	KindElseIfClause:               "ElseIfClause",
	KindElseClause:                 "ElseClause",
	KindForStatement:               "ForStatement",
	KindForEachStatement:           "ForEachStatement",
	KindWhileStatement:             "WhileStatement",
	KindDoStatement:                "DoStatement",
	KindSelectCaseStatement:        "SelectCaseStatement",
	KindCaseClause:                 "CaseClause",
	KindCaseElseClause:             "CaseElseClause",
	KindWithStatement:              "WithStatement",
	KindCallStatement:              "CallStatement",
	KindSetStatement:               "SetStatement",
	KindLetStatement:               "LetStatement",
	KindAssignmentStatement:        "AssignmentStatement",
	KindGotoStatement:              "GotoStatement",
	KindGoSubStatement:             "GoSubStatement",
	KindReturnStatement:            "ReturnStatement",
	KindResumeStatement:            "ResumeStatement",
	KindExitStatement:              "ExitStatement",
	KindOnErrorStatement:           "OnErrorStatement",
	KindOnGoToStatement:            "OnGoToStatement",
	KindLabelStatement:             "LabelStatement",
	KindAttributeStatement:         "AttributeStatement",
	KindOptionStatement:            "OptionStatement",
	KindKeywordStatement:           "KeywordStatement",
	KindBinaryExpression:           "BinaryExpression",
	KindUnaryExpression:            "UnaryExpression",
	KindLiteralExpression:          "LiteralExpression",
	KindIdentifierExpression:       "IdentifierExpression",
	KindMemberAccessExpression:     "MemberAccessExpression",
	KindCallExpression:             "CallExpression",
	KindParenthesizedExpression:    "ParenthesizedExpression",
	KindNewExpression:              "NewExpression",
	KindAddressOfExpression:        "AddressOfExpression",
	KindTypeOfExpression:           "TypeOfExpression",
	KindArgumentList:               "ArgumentList",
	KindArgument:                   "Argument",
	KindParameterList:              "ParameterList",
	KindParameter:                  "Parameter",
	KindAsClause:                   "AsClause",
	KindCaseTest:                   "CaseTest",
	KindEnumMember:                 "EnumMember",
	KindTypeMember:                 "TypeMember",
	KindStatementList:              "StatementList",
	KindUnknown:                    "Unknown",
	KindWhitespace:                 "Whitespace",
	KindNewline:                    "Newline",
	KindLineContinuation:           "LineContinuation",
	KindEndOfLineComment:           "EndOfLineComment",
	KindRemComment:                 "RemComment",
	KindIdentifier:                 "Identifier",
	KindStringLiteral:              "StringLiteral",
	KindIntegerLiteral:             "IntegerLiteral",
	KindLongLiteral:                "LongLiteral",
	KindSingleLiteral:              "SingleLiteral",
	KindDoubleLiteral:              "DoubleLiteral",
	KindCurrencyLiteral:            "CurrencyLiteral",
	KindDateLiteral:                "DateLiteral",
	KindAccessKeyword:              "AccessKeyword",
	KindAddressOfKeyword:           "AddressOfKeyword",
	KindAliasKeyword:               "AliasKeyword",
	KindAndKeyword:                 "AndKeyword",
	KindAnyKeyword:                 "AnyKeyword",
	KindAppActivateKeyword:         "AppActivateKeyword",
	KindAppendKeyword:              "AppendKeyword",
	KindAsKeyword:                  "AsKeyword",
	KindAttributeKeyword:           "AttributeKeyword",
	KindBaseKeyword:                "BaseKeyword",
	KindBeepKeyword:                "BeepKeyword",
	KindBeginKeyword:               "BeginKeyword",
	KindBinaryKeyword:              "BinaryKeyword",
	KindBooleanKeyword:             "BooleanKeyword",
	KindByRefKeyword:               "ByRefKeyword",
	KindByteKeyword:                "ByteKeyword",
	KindByValKeyword:               "ByValKeyword",
	KindCallKeyword:                "CallKeyword",
	KindCaseKeyword:                "CaseKeyword",
	KindChDirKeyword:               "ChDirKeyword",
	KindChDriveKeyword:             "ChDriveKeyword",
	KindClassKeyword:               "ClassKeyword",
	KindCloseKeyword:               "CloseKeyword",
	KindCompareKeyword:             "CompareKeyword",
	KindConstKeyword:               "ConstKeyword",
	KindCurrencyKeyword:            "CurrencyKeyword",
	KindDatabaseKeyword:            "DatabaseKeyword",
	KindDateKeyword:                "DateKeyword",
	KindDecimalKeyword:             "DecimalKeyword",
	KindDeclareKeyword:             "DeclareKeyword",
	KindDefBoolKeyword:             "DefBoolKeyword",
	KindDefByteKeyword:             "DefByteKeyword",
	KindDefCurKeyword:              "DefCurKeyword",
	KindDefDateKeyword:             "DefDateKeyword",
	KindDefDblKeyword:              "DefDblKeyword",
	KindDefDecKeyword:              "DefDecKeyword",
	KindDefIntKeyword:              "DefIntKeyword",
	KindDefLngKeyword:              "DefLngKeyword",
	KindDefObjKeyword:              "DefObjKeyword",
	KindDefSngKeyword:              "DefSngKeyword",
	KindDefStrKeyword:              "DefStrKeyword",
	KindDefVarKeyword:              "DefVarKeyword",
	KindDeleteSettingKeyword:       "DeleteSettingKeyword",
	KindDimKeyword:                 "DimKeyword",
	KindDoKeyword:                  "DoKeyword",
	KindDoubleKeyword:              "DoubleKeyword",
	KindEachKeyword:                "EachKeyword",
	KindElseIfKeyword:              "ElseIfKeyword",
	KindElseKeyword:                "ElseKeyword",
	KindEmptyKeyword:               "EmptyKeyword",
	KindEndKeyword:                 "EndKeyword",
	KindEnumKeyword:                "EnumKeyword",
	KindEqvKeyword:                 "EqvKeyword",
	KindEraseKeyword:               "EraseKeyword",
	KindErrorKeyword:               "ErrorKeyword",
	KindEventKeyword:               "EventKeyword",
	KindExitKeyword:                "ExitKeyword",
	KindExplicitKeyword:            "ExplicitKeyword",
	KindFalseKeyword:               "FalseKeyword",
	KindFileCopyKeyword:            "FileCopyKeyword",
	KindForKeyword:                 "ForKeyword",
	KindFriendKeyword:              "FriendKeyword",
	KindFunctionKeyword:            "FunctionKeyword",
	KindGetKeyword:                 "GetKeyword",
	KindGoSubKeyword:               "GoSubKeyword",
	KindGotoKeyword:                "GotoKeyword",
	KindIfKeyword:                  "IfKeyword",
	KindImpKeyword:                 "ImpKeyword",
	KindImplementsKeyword:          "ImplementsKeyword",
	KindInKeyword:                  "InKeyword",
	KindInputKeyword:               "InputKeyword",
	KindIntegerKeyword:             "IntegerKeyword",
	KindIsKeyword:                  "IsKeyword",
	KindKillKeyword:                "KillKeyword",
	KindLenKeyword:                 "LenKeyword",
	KindLetKeyword:                 "LetKeyword",
	KindLibKeyword:                 "LibKeyword",
	KindLikeKeyword:                "LikeKeyword",
	KindLineKeyword:                "LineKeyword",
	KindLoadKeyword:                "LoadKeyword",
	KindLockKeyword:                "LockKeyword",
	KindLongKeyword:                "LongKeyword",
	KindLoopKeyword:                "LoopKeyword",
	KindLSetKeyword:                "LSetKeyword",
	KindMeKeyword:                  "MeKeyword",
	KindMidBKeyword:                "MidBKeyword",
	KindMidKeyword:                 "MidKeyword",
	KindMkDirKeyword:               "MkDirKeyword",
	KindModKeyword:                 "ModKeyword",
	KindModuleKeyword:              "ModuleKeyword",
	KindNameKeyword:                "NameKeyword",
	KindNewKeyword:                 "NewKeyword",
	KindNextKeyword:                "NextKeyword",
	KindNotKeyword:                 "NotKeyword",
	KindNothingKeyword:             "NothingKeyword",
	KindNullKeyword:                "NullKeyword",
	KindObjectKeyword:              "ObjectKeyword",
	KindOffKeyword:                 "OffKeyword",
	KindOnKeyword:                  "OnKeyword",
	KindOpenKeyword:                "OpenKeyword",
	KindOptionalKeyword:            "OptionalKeyword",
	KindOptionKeyword:              "OptionKeyword",
	KindOrKeyword:                  "OrKeyword",
	KindOutputKeyword:              "OutputKeyword",
	KindParamArrayKeyword:          "ParamArrayKeyword",
	KindPreserveKeyword:            "PreserveKeyword",
	KindPrintKeyword:               "PrintKeyword",
	KindPrivateKeyword:             "PrivateKeyword",
	KindPropertyKeyword:            "PropertyKeyword",
	KindPublicKeyword:              "PublicKeyword",
	KindPutKeyword:                 "PutKeyword",
	KindRaiseEventKeyword:          "RaiseEventKeyword",
	KindRandomizeKeyword:           "RandomizeKeyword",
	KindRandomKeyword:              "RandomKeyword",
	KindReadKeyword:                "ReadKeyword",
	KindReDimKeyword:               "ReDimKeyword",
	KindResetKeyword:               "ResetKeyword",
	KindResumeKeyword:              "ResumeKeyword",
	KindReturnKeyword:              "ReturnKeyword",
	KindRmDirKeyword:               "RmDirKeyword",
	KindRSetKeyword:                "RSetKeyword",
	KindSavePictureKeyword:         "SavePictureKeyword",
	KindSaveSettingKeyword:         "SaveSettingKeyword",
	KindSeekKeyword:                "SeekKeyword",
	KindSelectKeyword:              "SelectKeyword",
	KindSendKeysKeyword:            "SendKeysKeyword",
	KindSetAttrKeyword:             "SetAttrKeyword",
	KindSetKeyword:                 "SetKeyword",
	KindSingleKeyword:              "SingleKeyword",
	KindStaticKeyword:              "StaticKeyword",
	KindStepKeyword:                "StepKeyword",
	KindStopKeyword:                "StopKeyword",
	KindStringKeyword:              "StringKeyword",
	KindSubKeyword:                 "SubKeyword",
	KindTextKeyword:                "TextKeyword",
	KindThenKeyword:                "ThenKeyword",
	KindTimeKeyword:                "TimeKeyword",
	KindToKeyword:                  "ToKeyword",
	KindTrueKeyword:                "TrueKeyword",
	KindTypeKeyword:                "TypeKeyword",
	KindTypeOfKeyword:              "TypeOfKeyword",
	KindUnloadKeyword:              "UnloadKeyword",
	KindUnlockKeyword:              "UnlockKeyword",
	KindUntilKeyword:               "UntilKeyword",
	KindVariantKeyword:             "VariantKeyword",
	KindVersionKeyword:             "VersionKeyword",
	KindWendKeyword:                "WendKeyword",
	KindWhileKeyword:               "WhileKeyword",
	KindWidthKeyword:               "WidthKeyword",
	KindWithEventsKeyword:          "WithEventsKeyword",
	KindWithKeyword:                "WithKeyword",
	KindWriteKeyword:               "WriteKeyword",
	KindXorKeyword:                 "XorKeyword",
	KindDollarSign:                 "DollarSign",
	KindUnderscore:                 "Underscore",
	KindAmpersand:                  "Ampersand",
	KindPercent:                    "Percent",
	KindOctothorpe:                 "Octothorpe",
	KindAtSign:                     "AtSign",
	KindExclamationMark:            "ExclamationMark",
	KindLeftParenthesis:            "LeftParenthesis",
	KindRightParenthesis:           "RightParenthesis",
	KindLeftCurlyBrace:             "LeftCurlyBrace",
	KindRightCurlyBrace:            "RightCurlyBrace",
	KindLeftSquareBracket:          "LeftSquareBracket",
	KindRightSquareBracket:         "RightSquareBracket",
	KindComma:                      "Comma",
	KindSemicolon:                  "Semicolon",
	KindEqualityOperator:           "EqualityOperator",
	KindInequalityOperator:         "InequalityOperator",
	KindLessThanOrEqualOperator:    "LessThanOrEqualOperator",
	KindGreaterThanOrEqualOperator: "GreaterThanOrEqualOperator",
	KindLessThanOperator:           "LessThanOperator",
	KindGreaterThanOperator:        "GreaterThanOperator",
	KindMultiplicationOperator:     "MultiplicationOperator",
	KindSubtractionOperator:        "SubtractionOperator",
	KindAdditionOperator:           "AdditionOperator",
	KindDivisionOperator:           "DivisionOperator",
	KindBackwardSlashOperator:      "BackwardSlashOperator",
	KindPeriodOperator:             "PeriodOperator",
	KindColonOperator:              "ColonOperator",
	KindExponentiationOperator:     "ExponentiationOperator",
	KindEndOfFile:                  "EndOfFile",
}

func (k SyntaxKind) String() string {
	if name, ok := syntaxKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTrivia reports whether the kind is whitespace, a line continuation,
// or a comment. Newlines are not trivia: they terminate logical lines.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case KindWhitespace, KindLineContinuation, KindEndOfLineComment, KindRemComment:
		return true
	}
	return false
}

// IsKeyword reports whether the kind is one of the keyword tokens.
func (k SyntaxKind) IsKeyword() bool {
	return k >= KindAccessKeyword && k <= KindXorKeyword
}

// IsLiteral reports whether the kind is a literal token.
func (k SyntaxKind) IsLiteral() bool {
	return k >= KindStringLiteral && k <= KindDateLiteral
}

// Token is an atomic lexical unit: its kind, the exact source substring
// it covers (original casing preserved), and its byte span. Tokens are
// immutable once produced by the lexer.
type Token struct {
	Kind SyntaxKind
	Text string
	Span Span
}

// keywords maps the lowercase spelling of every keyword to its kind.
// Process-wide immutable static data, shared by concurrent parses.
var keywords = map[string]SyntaxKind{
	"access":        KindAccessKeyword,
	"addressof":     KindAddressOfKeyword,
	"alias":         KindAliasKeyword,
	"and":           KindAndKeyword,
	"any":           KindAnyKeyword,
	"appactivate":   KindAppActivateKeyword,
	"append":        KindAppendKeyword,
	"as":            KindAsKeyword,
	"attribute":     KindAttributeKeyword,
	"base":          KindBaseKeyword,
	"beep":          KindBeepKeyword,
	"begin":         KindBeginKeyword,
	"binary":        KindBinaryKeyword,
	"boolean":       KindBooleanKeyword,
	"byref":         KindByRefKeyword,
	"byte":          KindByteKeyword,
	"byval":         KindByValKeyword,
	"call":          KindCallKeyword,
	"case":          KindCaseKeyword,
	"chdir":         KindChDirKeyword,
	"chdrive":       KindChDriveKeyword,
	"class":         KindClassKeyword,
	"close":         KindCloseKeyword,
	"compare":       KindCompareKeyword,
	"const":         KindConstKeyword,
	"currency":      KindCurrencyKeyword,
	"database":      KindDatabaseKeyword,
	"date":          KindDateKeyword,
	"decimal":       KindDecimalKeyword,
	"declare":       KindDeclareKeyword,
	"defbool":       KindDefBoolKeyword,
	"defbyte":       KindDefByteKeyword,
	"defcur":        KindDefCurKeyword,
	"defdate":       KindDefDateKeyword,
	"defdbl":        KindDefDblKeyword,
	"defdec":        KindDefDecKeyword,
	"defint":        KindDefIntKeyword,
	"deflng":        KindDefLngKeyword,
	"defobj":        KindDefObjKeyword,
	"defsng":        KindDefSngKeyword,
	"defstr":        KindDefStrKeyword,
	"defvar":        KindDefVarKeyword,
	"deletesetting": KindDeleteSettingKeyword,
	"dim":           KindDimKeyword,
	"do":            KindDoKeyword,
	"double":        KindDoubleKeyword,
	"each":          KindEachKeyword,
	"else":          KindElseKeyword,
	"elseif":        KindElseIfKeyword,
	"empty":         KindEmptyKeyword,
	"end":           KindEndKeyword,
	"enum":          KindEnumKeyword,
	"eqv":           KindEqvKeyword,
	"erase":         KindEraseKeyword,
	"error":         KindErrorKeyword,
	"event":         KindEventKeyword,
	"exit":          KindExitKeyword,
	"explicit":      KindExplicitKeyword,
	"false":         KindFalseKeyword,
	"filecopy":      KindFileCopyKeyword,
	"for":           KindForKeyword,
	"friend":        KindFriendKeyword,
	"function":      KindFunctionKeyword,
	"get":           KindGetKeyword,
	"gosub":         KindGoSubKeyword,
	"goto":          KindGotoKeyword,
	"if":            KindIfKeyword,
	"imp":           KindImpKeyword,
	"implements":    KindImplementsKeyword,
	"in":            KindInKeyword,
	"input":         KindInputKeyword,
	"integer":       KindIntegerKeyword,
	"is":            KindIsKeyword,
	"kill":          KindKillKeyword,
	"len":           KindLenKeyword,
	"let":           KindLetKeyword,
	"lib":           KindLibKeyword,
	"like":          KindLikeKeyword,
	"line":          KindLineKeyword,
	"load":          KindLoadKeyword,
	"lock":          KindLockKeyword,
	"long":          KindLongKeyword,
	"loop":          KindLoopKeyword,
	"lset":          KindLSetKeyword,
	"me":            KindMeKeyword,
	"mid":           KindMidKeyword,
	"midb":          KindMidBKeyword,
	"mkdir":         KindMkDirKeyword,
	"mod":           KindModKeyword,
	"module":        KindModuleKeyword,
	"name":          KindNameKeyword,
	"new":           KindNewKeyword,
	"next":          KindNextKeyword,
	"not":           KindNotKeyword,
	"nothing":       KindNothingKeyword,
	"null":          KindNullKeyword,
	"object":        KindObjectKeyword,
	"off":           KindOffKeyword,
	"on":            KindOnKeyword,
	"open":          KindOpenKeyword,
	"option":        KindOptionKeyword,
	"optional":      KindOptionalKeyword,
	"or":            KindOrKeyword,
	"output":        KindOutputKeyword,
	"paramarray":    KindParamArrayKeyword,
	"preserve":      KindPreserveKeyword,
	"print":         KindPrintKeyword,
	"private":       KindPrivateKeyword,
	"property":      KindPropertyKeyword,
	"public":        KindPublicKeyword,
	"put":           KindPutKeyword,
	"raiseevent":    KindRaiseEventKeyword,
	"random":        KindRandomKeyword,
	"randomize":     KindRandomizeKeyword,
	"read":          KindReadKeyword,
	"redim":         KindReDimKeyword,
	"reset":         KindResetKeyword,
	"resume":        KindResumeKeyword,
	"return":        KindReturnKeyword,
	"rmdir":         KindRmDirKeyword,
	"rset":          KindRSetKeyword,
	"savepicture":   KindSavePictureKeyword,
	"savesetting":   KindSaveSettingKeyword,
	"seek":          KindSeekKeyword,
	"select":        KindSelectKeyword,
	"sendkeys":      KindSendKeysKeyword,
	"set":           KindSetKeyword,
	"setattr":       KindSetAttrKeyword,
	"single":        KindSingleKeyword,
	"static":        KindStaticKeyword,
	"step":          KindStepKeyword,
	"stop":          KindStopKeyword,
	"string":        KindStringKeyword,
	"sub":           KindSubKeyword,
	"text":          KindTextKeyword,
	"then":          KindThenKeyword,
	"time":          KindTimeKeyword,
	"to":            KindToKeyword,
	"true":          KindTrueKeyword,
	"type":          KindTypeKeyword,
	"typeof":        KindTypeOfKeyword,
	"unload":        KindUnloadKeyword,
	"unlock":        KindUnlockKeyword,
	"until":         KindUntilKeyword,
	"variant":       KindVariantKeyword,
	"version":       KindVersionKeyword,
	"wend":          KindWendKeyword,
	"while":         KindWhileKeyword,
	"width":         KindWidthKeyword,
	"with":          KindWithKeyword,
	"withevents":    KindWithEventsKeyword,
	"write":         KindWriteKeyword,
	"xor":           KindXorKeyword,
}

// LookupKeyword resolves a word to its keyword kind, ignoring case.
// Words not in the keyword table are identifiers.
func LookupKeyword(word string) SyntaxKind {
	if kind, ok := keywords[lowerASCII(word)]; ok {
		return kind
	}
	return KindIdentifier
}

func lowerASCII(s string) string {
	lower := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			lower = false
			break
		}
	}
	if lower {
		return s
	}
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		b[i] = ch
	}
	return string(b)
}
