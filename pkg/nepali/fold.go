package nepali

// floorDiv divides rounding toward negative infinity. b must be non-zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv: the result takes the sign of b.
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// arith applies a binary arithmetic operator. It returns the bare sentinel on
// failure; callers attach the position.
func arith(op TokenKind, a, b int64) (int64, error) {
	switch op {
	case PLUS:
		return a + b, nil
	case MINUS:
		return a - b, nil
	case MULTIPLY:
		return a * b, nil
	case DIVIDE:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return floorDiv(a, b), nil
	case MODULO:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return floorMod(a, b), nil
	}
	return 0, ErrUnknownOperator
}

// compare applies a relational operator.
func compare(op TokenKind, a, b int64) (bool, error) {
	switch op {
	case LT:
		return a < b, nil
	case LE:
		return a <= b, nil
	case GT:
		return a > b, nil
	case GE:
		return a >= b, nil
	case EQ:
		return a == b, nil
	case NEQ:
		return a != b, nil
	}
	return false, ErrUnknownOperator
}

// foldBinary collapses b into a Literal when both operands are literals.
// Operations that would fail (a zero divisor) stay in the tree so the error
// surfaces only if and when the expression is actually evaluated.
func foldBinary(b *BinaryExpr) Expr {
	l, lok := b.Left.(*Literal)
	r, rok := b.Right.(*Literal)
	if !lok || !rok {
		return b
	}
	v, err := arith(b.Op, l.Value, r.Value)
	if err != nil {
		return b
	}
	return &Literal{Value: v}
}

