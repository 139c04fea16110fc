package regex

// Matches returns a fresh table holding every substring of text that p
// matches.
func Matches(p Pattern, text string) *Table {
	t := NewTable(len(text))
	p.Match(text, t)
	return t
}

func (p *literal) Match(text string, t *Table) {
	for i := 0; i < len(text); i++ {
		if text[i] == p.sym {
			t.Set(i, i+1)
		}
	}
}

func (p *anyChar) Match(text string, t *Table) {
	for i := 0; i < len(text); i++ {
		t.Set(i, i+1)
	}
}

func (p *startAnchor) Match(text string, t *Table) {
	t.Set(0, 0)
}

func (p *endAnchor) Match(text string, t *Table) {
	t.Set(len(text), len(text))
}

func (p *charClass) Match(text string, t *Table) {
	for i := 0; i < len(text); i++ {
		if p.set[text[i]] {
			t.Set(i, i+1)
		}
	}
}

func (p *concat) Match(text string, t *Table) {
	n := len(text)
	left := Matches(p.left, text)
	right := Matches(p.right, text)

	for b := 0; b <= n; b++ {
		for k := b; k <= n; k++ {
			if !left.Get(b, k) {
				continue
			}
			for e := k; e <= n; e++ {
				if right.Get(k, e) {
					t.Set(b, e)
				}
			}
		}
	}
}

func (p *alternation) Match(text string, t *Table) {
	t.Union(Matches(p.left, text))
	t.Union(Matches(p.right, text))
}

func (p *zeroOrOne) Match(text string, t *Table) {
	p.inner.Match(text, t)
	for i := 0; i <= len(text); i++ {
		t.Set(i, i)
	}
}

func (p *zeroOrMore) Match(text string, t *Table) {
	repeat(Matches(p.inner, text), t)
	for i := 0; i <= len(text); i++ {
		t.Set(i, i)
	}
}

func (p *oneOrMore) Match(text string, t *Table) {
	repeat(Matches(p.inner, text), t)
}

// repeat fills t with one or more back-to-back copies of the matches in
// inner. Copies are only chained when they all have the same length as the
// first one: for a match [b,e) it follows [e,2e-b), [2e-b,3e-2b), ... as far
// as inner allows and marks every run of consecutive copies. Chains that mix
// lengths (possible when inner is itself composite) are not found.
func repeat(inner, t *Table) {
	n := inner.Len()
	t.Union(inner)

	for b := 0; b <= n; b++ {
		for e := b + 1; e <= n; e++ {
			if !inner.Get(b, e) {
				continue
			}
			length := e - b
			count := 1
			for e+length*count <= n && inner.Get(b+length*count, e+length*count) {
				count++
			}
			for i := 0; i < count; i++ {
				for j := b; j <= b+length*i; j += length {
					t.Set(j, e+length*i)
				}
			}
		}
	}
}
