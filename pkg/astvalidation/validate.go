package astvalidation

import (
	"github.com/lexigraph/graphql/pkg/ast"
	"github.com/lexigraph/graphql/pkg/astvisitor"
	"github.com/lexigraph/graphql/pkg/operationreport"
)

// Validate runs every static validation rule against operation in one
// shared astvisitor.Walker pass (spec.md §4.5: "A ValidationContext owns
// the schema, document, type-info traversal, variable usages, and an error
// list. All rules share that context and a single traversal dispatches
// every rule's enter/leave."). schema is the SDL document describing the
// type system operation is validated against. Errors accumulate on report;
// call report.HasErrors() afterward to decide whether operation may run.
func Validate(schema, operation *ast.Document, report *operationreport.Report) {
	walker := astvisitor.NewWalker(48)
	ctx := newContext(schema, operation, report, &walker)

	visitors := []interface{}{
		&executableDefinitionsRule{ctx},
		&loneAnonymousOperationRule{ctx},
		&uniqueOperationNamesRule{ctx},
		&uniqueFragmentNamesRule{ctx},
		&recordFragmentSpreadsRule{ctx},
		&noUnusedFragmentsRule{ctx},
		&fragmentSpreadTargetDefinedRule{ctx},
		&fragmentSpreadIsPossibleRule{ctx},
		&fragmentsOnCompositeTypesRule{ctx},
		&fieldsOnCorrectTypeRule{ctx},
		&scalarLeafsRule{ctx},
		&knownArgumentNamesRule{ctx},
		&uniqueArgumentNamesRule{ctx},
		&requiredArgumentsProvidedRule{ctx},
		&knownDirectiveNamesRule{ctx},
		&directiveLocationRule{ctx},
		&knownTypeNamesRule{ctx},
		&uniqueInputFieldNamesRule{ctx},
		&valuesOfCorrectTypeRule{ctx},
		&uniqueVariableNamesRule{ctx},
		&variablesAreInputTypesRule{ctx},
		&noUnusedVariablesRule{ctx},
		&recordVariableUsagesRule{ctx},
		&variableUsagesAllowedRule{ctx: ctx},
		&overlappingFieldsCanBeMergeRule{ctx},
	}
	for _, v := range visitors {
		walker.RegisterAllNodesVisitor(v)
	}

	walker.Walk(operation, schema, report)
}
