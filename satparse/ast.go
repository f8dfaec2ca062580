package satparse

import "fmt"

// Kind is the closed set of AST node variants.
type Kind int

const (
	KindVariable Kind = iota
	KindBooleanLiteral
	KindNegation
	KindConjunction
	KindDisjunction
	KindExclusiveDisjunction
	KindImplication
	KindBiconditional
	KindAssignment
	KindStatement
	KindStatementList
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "Variable"
	case KindBooleanLiteral:
		return "BooleanLiteral"
	case KindNegation:
		return "Negation"
	case KindConjunction:
		return "Conjunction"
	case KindDisjunction:
		return "Disjunction"
	case KindExclusiveDisjunction:
		return "ExclusiveDisjunction"
	case KindImplication:
		return "Implication"
	case KindBiconditional:
		return "Biconditional"
	case KindAssignment:
		return "Assignment"
	case KindStatement:
		return "Statement"
	case KindStatementList:
		return "StatementList"
	default:
		return "Unknown"
	}
}

// Node is any AST node. Every non-leaf Node exclusively owns its children:
// Release destroys a node and everything beneath it.
type Node interface {
	Kind() Kind
}

// VariableNode names a context-interned variable by its dense id.
type VariableNode struct {
	ID int
}

func (n *VariableNode) Kind() Kind { return KindVariable }

// NewVariable wraps an id already resolved via Context.VariableGet.
func NewVariable(id int) *VariableNode {
	return &VariableNode{ID: id}
}

// BooleanLiteralNode is the `true`/`false` primary.
type BooleanLiteralNode struct {
	Value bool
}

func (n *BooleanLiteralNode) Kind() Kind { return KindBooleanLiteral }

func NewBooleanLiteral(value bool) *BooleanLiteralNode {
	return &BooleanLiteralNode{Value: value}
}

// NegationNode is the unary, right-associative `¬` operator.
type NegationNode struct {
	Child Node
}

func (n *NegationNode) Kind() Kind { return KindNegation }

func NewNegation(child Node) *NegationNode {
	return &NegationNode{Child: child}
}

// BinaryNode covers every two-operand variant: Conjunction, Disjunction,
// ExclusiveDisjunction, Implication, Biconditional, and Assignment. The
// concrete operator is carried in kind rather than as a distinct Go type,
// since all six share identical shape and release behaviour.
type BinaryNode struct {
	kind Kind
	LHS  Node
	RHS  Node
}

func (n *BinaryNode) Kind() Kind { return n.kind }

func newBinary(kind Kind, lhs, rhs Node) *BinaryNode {
	return &BinaryNode{kind: kind, LHS: lhs, RHS: rhs}
}

func NewConjunction(lhs, rhs Node) *BinaryNode {
	return newBinary(KindConjunction, lhs, rhs)
}

func NewDisjunction(lhs, rhs Node) *BinaryNode {
	return newBinary(KindDisjunction, lhs, rhs)
}

func NewExclusiveDisjunction(lhs, rhs Node) *BinaryNode {
	return newBinary(KindExclusiveDisjunction, lhs, rhs)
}

func NewImplication(lhs, rhs Node) *BinaryNode {
	return newBinary(KindImplication, lhs, rhs)
}

func NewBiconditional(lhs, rhs Node) *BinaryNode {
	return newBinary(KindBiconditional, lhs, rhs)
}

// NewAssignment builds an Assignment node. lhs must be a Variable node; on
// failure the caller retains ownership of both lhs and rhs (the constructor
// is all-or-nothing).
func NewAssignment(lhs, rhs Node) (*BinaryNode, error) {
	if _, ok := lhs.(*VariableNode); !ok {
		return nil, newError(ErrLeftHandSideMustBeVariable, Pos{}, "assignment lhs must be a Variable node")
	}
	return newBinary(KindAssignment, lhs, rhs), nil
}

// StatementNode wraps a top-level expression tree.
type StatementNode struct {
	Child Node
}

func (n *StatementNode) Kind() Kind { return KindStatement }

func NewStatement(child Node) *StatementNode {
	return &StatementNode{Child: child}
}

// statementListEntry is one link of a StatementListNode's owned chain.
type statementListEntry struct {
	stmt *StatementNode
	next *statementListEntry
}

// StatementListNode is a singly-linked, owned list of Statement nodes.
type StatementListNode struct {
	head *statementListEntry
}

func (n *StatementListNode) Kind() Kind { return KindStatementList }

// NewStatementList returns an empty list.
func NewStatementList() *StatementListNode {
	return &StatementListNode{}
}

// PushStatement prepends child to receiver's chain, transferring ownership.
// receiver must be a *StatementListNode and child must be a *StatementNode;
// violating either returns the matching closed error without mutating
// receiver.
func PushStatement(receiver Node, child Node) (*StatementListNode, error) {
	list, ok := receiver.(*StatementListNode)
	if !ok {
		return nil, newError(ErrListNodeMustBeStatementList, Pos{}, "push receiver must be a StatementList node")
	}
	stmt, ok := child.(*StatementNode)
	if !ok {
		return nil, newError(ErrChildMustBeStatement, Pos{}, "pushed child must be a Statement node")
	}
	list.head = &statementListEntry{stmt: stmt, next: list.head}
	return list, nil
}

// Statements returns the list's Statement nodes in reverse push order (most
// recently pushed first), without mutating or releasing the list.
func (n *StatementListNode) Statements() []*StatementNode {
	var out []*StatementNode
	for e := n.head; e != nil; e = e.next {
		out = append(out, e.stmt)
	}
	return out
}

// Release recursively destroys node and everything it owns. Leaf variants
// (Variable, BooleanLiteral) are no-ops. StatementList walks its full chain
// even if releasing one entry fails, collecting and returning the last
// non-nil error encountered; everything else propagates its children's
// errors the same way. An unrecognised Node implementation is itself a
// closed error (UnsupportedAstNodeType), never a panic.
func Release(node Node) error {
	if node == nil {
		return nil
	}
	switch n := node.(type) {
	case *VariableNode:
		return nil
	case *BooleanLiteralNode:
		return nil
	case *NegationNode:
		return Release(n.Child)
	case *BinaryNode:
		lhsErr := Release(n.LHS)
		rhsErr := Release(n.RHS)
		if rhsErr != nil {
			return rhsErr
		}
		return lhsErr
	case *StatementNode:
		return Release(n.Child)
	case *StatementListNode:
		var last error
		for e := n.head; e != nil; e = e.next {
			if err := Release(e.stmt); err != nil {
				last = err
			}
		}
		n.head = nil
		return last
	default:
		return newError(ErrUnsupportedAstNodeType, Pos{}, fmt.Sprintf("release: unsupported node type %T", node))
	}
}

// Visitor is implemented by callers of Walk. Visit is called with every
// node Walk descends into; returning nil stops the walk down that branch,
// otherwise the returned Visitor is used for the node's children (mirroring
// go/ast.Visitor, adapted to this package's own Node tree rather than Go
// source).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first, children-after-parent order.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	v = v.Visit(node)
	if v == nil {
		return
	}

	switch n := node.(type) {
	case *NegationNode:
		Walk(v, n.Child)
	case *BinaryNode:
		Walk(v, n.LHS)
		Walk(v, n.RHS)
	case *StatementNode:
		Walk(v, n.Child)
	case *StatementListNode:
		for e := n.head; e != nil; e = e.next {
			Walk(v, e.stmt)
		}
	}
}
