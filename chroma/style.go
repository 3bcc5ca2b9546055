package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/tint"
)

// StyleFromChrome returns a function that maps chroma token types to tint
// styles based on the provided chrome colors. The mapping covers the token
// types the INI lexer emits for theme files: attribute names, values,
// comments, section headers, and the assignment operator.
func StyleFromChrome(cs tint.ChromeStyles) StyleFunc {
	return func(tt chromalib.TokenType) tint.Style {
		switch tt {
		// Section headers ([...] lines)
		case chromalib.Keyword, chromalib.KeywordDeclaration, chromalib.KeywordNamespace:
			return tint.Style{Foreground: cs.Title.Foreground, Bold: true}

		// Attribute names
		case chromalib.NameAttribute:
			return tint.Style{Foreground: cs.AttrName.Foreground}

		// Comments
		case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
			chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return tint.Style{Foreground: cs.Comment.Foreground}

		// Attribute values
		case chromalib.String, chromalib.StringDouble, chromalib.StringSingle,
			chromalib.StringBacktick, chromalib.Number, chromalib.NumberBin,
			chromalib.NumberFloat, chromalib.NumberHex, chromalib.NumberInteger,
			chromalib.NumberOct:
			return tint.Style{Foreground: cs.AttrValue.Foreground}

		// Assignment operator
		case chromalib.Operator, chromalib.OperatorWord:
			return tint.Style{Foreground: cs.Status.Foreground}

		default:
			return tint.Style{}
		}
	}
}
