package backend

import (
	"fmt"
	goast "go/ast"
	"go/token"
	"reflect"
	"strconv"

	"github.com/cottand/lamb/frontend/ast"
	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/cottand/lamb/util"
)

func (tp *Transpiler) transpileExpr(expr ast.Expr) (goast.Expr, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return transpileLiteral(e)

	case *ast.Var:
		if !tp.scope.Has(e.Name) {
			return nil, lamberr.New(lamberr.NewUndefinedValue{
				Positioner: e,
				Name:       e.Name,
			})
		}
		return goast.NewIdent(util.MangledIdent(e.Name)), nil

	case *ast.Call:
		fn, err := tp.transpileExpr(e.Func)
		if err != nil {
			return nil, err
		}
		arg, err := tp.transpileExpr(e.Arg)
		if err != nil {
			return nil, err
		}
		return &goast.CallExpr{
			Fun:  goast.NewIdent(applyFuncName),
			Args: []goast.Expr{fn, arg},
		}, nil

	case *ast.Func:
		body, err := tp.transpileWithBinding(e.Param, e.Body)
		if err != nil {
			return nil, err
		}
		return funcLit(e.Param, body), nil

	// Go has no let expression, so we inline a function call that binds the name
	case *ast.Let:
		value, err := tp.transpileExpr(e.Value)
		if err != nil {
			return nil, err
		}
		body, err := tp.transpileWithBinding(e.Var, e.Body)
		if err != nil {
			return nil, err
		}
		return &goast.CallExpr{
			Fun:  funcLit(e.Var, body),
			Args: []goast.Expr{value},
		}, nil

	default:
		return nil, lamberr.New(lamberr.Unclassified{
			Positioner: ast.RangeOf(expr),
			From:       fmt.Errorf("for expr, unexpected type %v", reflect.TypeOf(expr)),
		})
	}
}

// transpileWithBinding transpiles body with name in scope
func (tp *Transpiler) transpileWithBinding(name string, body ast.Expr) (goast.Expr, error) {
	outer := tp.scope
	tp.scope = tp.scope.Add(name)
	defer func() { tp.scope = outer }()
	return tp.transpileExpr(body)
}

func transpileLiteral(lit *ast.Literal) (goast.Expr, error) {
	switch lit.Kind {
	case ast.LitInt:
		return &goast.CallExpr{
			Fun: goast.NewIdent("int64"),
			Args: []goast.Expr{&goast.BasicLit{
				Kind:  token.INT,
				Value: strconv.FormatInt(lit.Int, 10),
			}},
		}, nil
	case ast.LitBool:
		return goast.NewIdent(strconv.FormatBool(lit.Bool)), nil
	case ast.LitString:
		return &goast.BasicLit{
			Kind:  token.STRING,
			Value: strconv.Quote(lit.Str),
		}, nil
	default:
		return nil, lamberr.New(lamberr.Unclassified{
			Positioner: lit,
			From:       fmt.Errorf("for literal, unexpected kind %v", lit.Kind),
		})
	}
}

// funcLit makes func(param any) any { return body }
func funcLit(param string, body goast.Expr) *goast.FuncLit {
	return &goast.FuncLit{
		Type: &goast.FuncType{
			Params: &goast.FieldList{List: []*goast.Field{{
				Names: []*goast.Ident{goast.NewIdent(util.MangledIdent(param))},
				Type:  anyType(),
			}}},
			Results: anyResult(),
		},
		Body: returning(body),
	}
}
