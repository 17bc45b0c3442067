package internal

import (
	"fmt"
	"strings"
)

// Printer renders a Term as an s-expression, adapted from the teacher's
// Visitor-based printer.go (same recursive-descent shape, one case per
// variant) but walking CBPV's Term variants instead of the teacher's
// interaction-net Expression variants. It exists purely for diagnostics
// (trace output, error messages, test failure output) and is not part of
// the evaluator's contract.
type Printer struct {
	b strings.Builder
}

// Sprint renders t as an s-expression string.
func Sprint(t Term) string {
	p := &Printer{}
	p.visit(t)
	return p.b.String()
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(&p.b, format, args...)
}

func (p *Printer) visit(t Term) {
	switch x := t.(type) {
	case *LiteralTerm:
		p.printf("%v", x.Payload)
	case *SymbolTerm:
		p.printf("%s", x.Name)
	case *OpTerm:
		p.printf("(%s", x.Op)
		for _, a := range x.Operand {
			p.printf(" ")
			p.visit(a)
		}
		p.printf(")")
	case *SuspendTerm:
		p.printf("!")
		p.visit(x.Inner)
	case *ResumeTerm:
		p.printf("?")
		p.visit(x.Inner)
	case *AbstractTerm:
		p.printf("(λ (%s) ", strings.Join(x.Params, " "))
		p.visit(x.Body)
		p.printf(")")
	case *ApplyTerm:
		p.printf("(")
		p.visit(x.Operator)
		for _, a := range x.Operand {
			p.printf(" ")
			p.visit(a)
		}
		p.printf(")")
	case *LetTerm:
		p.printf("(let %s ", x.Name)
		p.visit(x.Bound)
		p.printf(" ")
		p.visit(x.Body)
		p.printf(")")
	case *LetrecTerm:
		p.printf("(letrec (")
		for i, bind := range x.Bindings {
			if i > 0 {
				p.printf(" ")
			}
			p.printf("(%s ", bind.Name)
			p.visit(bind.Def)
			p.printf(")")
		}
		p.printf(") ")
		p.visit(x.Body)
		p.printf(")")
	case *ResetTerm:
		p.printf("(reset ")
		p.visit(x.Body)
		p.printf(")")
	case *ShiftTerm:
		p.printf("(shift %s ", x.Kontinuation)
		p.visit(x.Body)
		p.printf(")")
	case *IfTerm:
		p.printf("(if ")
		p.visit(x.Cond)
		p.printf(" ")
		p.visit(x.Then)
		p.printf(" ")
		p.visit(x.Else)
		p.printf(")")
	default:
		p.printf("<?>")
	}
}
