package token

// Keyword is a context-sensitive reserved word. Keywords are scanned as
// ordinary NAME tokens and only compared by text where a production expects one.
type Keyword string

const (
	KeywordType       Keyword = "type"
	KeywordInput      Keyword = "input"
	KeywordEnum       Keyword = "enum"
	KeywordQuery      Keyword = "query"
	KeywordImplements Keyword = "implements"
)

var keywords = map[string]Keyword{
	"type":       KeywordType,
	"input":      KeywordInput,
	"enum":       KeywordEnum,
	"query":      KeywordQuery,
	"implements": KeywordImplements,
}

// LookupKeyword returns the keyword spelled by ident, if any.
func LookupKeyword(ident string) (Keyword, bool) {
	kw, ok := keywords[ident]
	return kw, ok
}

// Is reports whether tok is a NAME spelling the keyword.
func (k Keyword) Is(tok Token) bool {
	return tok.Type == NAME && tok.Literal == string(k)
}
