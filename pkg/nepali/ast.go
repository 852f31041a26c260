package nepali

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces an integer.
type Expr interface {
	exprNode()
	String() string
}

// Literal is an integer constant.
//
//	anka x = 10;
//	         ^^  Literal{Value: 10}
type Literal struct {
	Value int64
}

func (*Literal) exprNode()        {}
func (l *Literal) String() string { return fmt.Sprintf("%d", l.Value) }

// VarRef is a read of a named variable, resolved when evaluated.
type VarRef struct {
	Name string
	Line int
}

func (*VarRef) exprNode()        {}
func (v *VarRef) String() string { return v.Name }

// BinaryExpr represents Left Op Right for one of + - * / %.
type BinaryExpr struct {
	Op    TokenKind
	Left  Expr
	Right Expr
	Line  int
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.symbol(), b.Right)
}

// Condition is a relational comparison. It is only ever consumed by control
// flow and never produces a stored value.
type Condition struct {
	Op    TokenKind
	Left  Expr
	Right Expr
}

func (c *Condition) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op.symbol(), c.Right)
}

//  Statement nodes

// Stmt is implemented by every executable node.
type Stmt interface {
	stmtNode()
	String() string
}

// VariableDecl represents  anka name = expr;
type VariableDecl struct {
	Type string // the type keyword as written
	Name string
	Init Expr
}

func (*VariableDecl) stmtNode() {}
func (d *VariableDecl) String() string {
	return fmt.Sprintf("VariableDecl(%s %s = %s)", d.Type, d.Name, d.Init)
}

// Assignment represents  name = expr;
type Assignment struct {
	Name  string
	Value Expr
}

func (*Assignment) stmtNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s = %s)", a.Name, a.Value)
}

// PrintStmt represents  Dekhau(expr);
type PrintStmt struct {
	Expr Expr
}

func (*PrintStmt) stmtNode() {}
func (p *PrintStmt) String() string {
	return fmt.Sprintf("PrintStmt(%s)", p.Expr)
}

// BlockStmt represents { statement ... }
type BlockStmt struct {
	Stmts []Stmt
}

func (*BlockStmt) stmtNode() {}
func (b *BlockStmt) String() string {
	parts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		parts[i] = s.String()
	}
	return fmt.Sprintf("Block[%s]", strings.Join(parts, "; "))
}

// IfStmt represents Yedi (cond) body [Athawa elseBody]. ElseBody is nil, a
// *BlockStmt, or another *IfStmt for an else-if chain.
type IfStmt struct {
	Condition *Condition
	Body      *BlockStmt
	ElseBody  Stmt
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	if i.ElseBody != nil {
		return fmt.Sprintf("IfStmt(if %s then %s else %s)", i.Condition, i.Body, i.ElseBody)
	}
	return fmt.Sprintf("IfStmt(if %s then %s)", i.Condition, i.Body)
}

// ForStmt represents Kolagi (init; cond; post) body. Init is a declaration or
// an assignment; Post is always an assignment.
type ForStmt struct {
	Init Stmt
	Cond *Condition
	Post *Assignment
	Body *BlockStmt
}

func (*ForStmt) stmtNode() {}
func (f *ForStmt) String() string {
	return fmt.Sprintf("ForStmt(init=%s, cond=%s, post=%s, body=%s)", f.Init, f.Cond, f.Post, f.Body)
}

// WhileStmt represents Jabasamma (cond) body
type WhileStmt struct {
	Condition *Condition
	Body      *BlockStmt
}

func (*WhileStmt) stmtNode() {}
func (w *WhileStmt) String() string {
	return fmt.Sprintf("WhileStmt(while %s do %s)", w.Condition, w.Body)
}

// DoWhileStmt represents Karo body Jabasamma (cond);
type DoWhileStmt struct {
	Body      *BlockStmt
	Condition *Condition
}

func (*DoWhileStmt) stmtNode() {}
func (d *DoWhileStmt) String() string {
	return fmt.Sprintf("DoWhileStmt(do %s while %s)", d.Body, d.Condition)
}
