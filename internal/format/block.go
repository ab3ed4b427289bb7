package format

// indent runs fn one level deeper. The level is restored even when fn
// aborts with an unsupported construct.
func (p *printer) indent(fn func()) {
	p.w.IndentPush()
	defer p.w.IndentPop()
	fn()
}

// blockNoNL renders `{`, the indented content produced by fn and `}`.
func (p *printer) blockNoNL(fn func()) {
	p.w.Space()
	p.w.WriteString("{\n")
	p.indent(fn)
	if !p.w.AtLineStart() {
		p.w.WriteString("\n")
	}
	p.w.WriteString("}")
}

// block is blockNoNL for standalone declarations, which end their line.
func (p *printer) block(fn func()) {
	p.blockNoNL(fn)
	p.w.WriteString("\n")
}
