package regex

import (
	"strings"
)

// Dump renders the tree under p one node per line, for debug output.
//
//	└─ Concat
//	   ├─ Literal('a')
//	   └─ OneOrMore
//	      └─ Literal('b')
func Dump(p Pattern) string {
	var sb strings.Builder
	dump(&sb, p, "", true)
	return sb.String()
}

func dump(sb *strings.Builder, p Pattern, prefix string, last bool) {
	connector := "├─ "
	childPrefix := prefix + "│  "
	if last {
		connector = "└─ "
		childPrefix = prefix + "   "
	}
	sb.WriteString(prefix + connector + label(p) + "\n")

	kids := children(p)
	for i, child := range kids {
		dump(sb, child, childPrefix, i == len(kids)-1)
	}
}
