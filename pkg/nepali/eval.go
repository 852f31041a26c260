package nepali

import (
	"fmt"

	"fortio.org/log"
)

// Exec runs one statement against the interpreter's variable table.
func (in *Interpreter) Exec(stmt Stmt) error {
	switch s := stmt.(type) {
	case *VariableDecl:
		val, err := in.evalExpr(s.Init)
		if err != nil {
			return err
		}
		log.LogVf("declare %s %s = %d", s.Type, s.Name, val)
		in.vars.Set(s.Name, val)
		return nil

	case *Assignment:
		val, err := in.evalExpr(s.Value)
		if err != nil {
			return err
		}
		log.LogVf("assign %s = %d", s.Name, val)
		in.vars.Set(s.Name, val)
		return nil

	case *PrintStmt:
		val, err := in.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(in.out, "%d\n", val); err != nil {
			return fmt.Errorf("print: %w", err)
		}
		return nil

	case *BlockStmt:
		return in.execBlock(s)

	case *IfStmt:
		ok, err := in.evalCondition(s.Condition)
		if err != nil {
			return err
		}
		if ok {
			log.LogVf("if %s is true, taking branch", s.Condition)
			return in.execBlock(s.Body)
		}
		if s.ElseBody == nil {
			log.LogVf("if %s is false, no else", s.Condition)
			return nil
		}
		log.LogVf("if %s is false, taking else", s.Condition)
		return in.Exec(s.ElseBody)

	case *ForStmt:
		if err := in.Exec(s.Init); err != nil {
			return err
		}
		for {
			ok, err := in.evalCondition(s.Cond)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := in.execBlock(s.Body); err != nil {
				return err
			}
			if err := in.Exec(s.Post); err != nil {
				return err
			}
		}

	case *WhileStmt:
		for {
			ok, err := in.evalCondition(s.Condition)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := in.execBlock(s.Body); err != nil {
				return err
			}
		}

	case *DoWhileStmt:
		for {
			if err := in.execBlock(s.Body); err != nil {
				return err
			}
			ok, err := in.evalCondition(s.Condition)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
	return &Error{Kind: ErrUnsupported, Msg: fmt.Sprintf("cannot execute %T", stmt)}
}

func (in *Interpreter) execBlock(b *BlockStmt) error {
	for _, stmt := range b.Stmts {
		if err := in.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// evalExpr resolves identifiers against the table at the moment of the call.
func (in *Interpreter) evalExpr(e Expr) (int64, error) {
	switch n := e.(type) {
	case *Literal:
		return n.Value, nil

	case *VarRef:
		val, ok := in.vars.Get(n.Name)
		if !ok {
			return 0, &Error{
				Kind:    ErrUndefinedVariable,
				Line:    n.Line,
				Msg:     n.Name,
				Snippet: snippetAt(in.lines, n.Line),
			}
		}
		return val, nil

	case *BinaryExpr:
		left, err := in.evalExpr(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := in.evalExpr(n.Right)
		if err != nil {
			return 0, err
		}
		val, err := arith(n.Op, left, right)
		if err != nil {
			return 0, &Error{
				Kind:    err,
				Line:    n.Line,
				Msg:     n.String(),
				Snippet: snippetAt(in.lines, n.Line),
			}
		}
		return val, nil
	}
	return 0, &Error{Kind: ErrUnknownOperator, Msg: fmt.Sprintf("cannot evaluate %T", e)}
}

func (in *Interpreter) evalCondition(c *Condition) (bool, error) {
	left, err := in.evalExpr(c.Left)
	if err != nil {
		return false, err
	}
	right, err := in.evalExpr(c.Right)
	if err != nil {
		return false, err
	}
	ok, err := compare(c.Op, left, right)
	if err != nil {
		return false, &Error{Kind: err, Msg: c.String()}
	}
	return ok, nil
}
