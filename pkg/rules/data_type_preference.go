package rules

import (
	"fmt"

	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// discouragedFloatTypes are approximate binary float types; exact decimal
// types should be preferred unless floating point is genuinely needed.
var discouragedFloatTypes = map[string]bool{
	"FLOAT":  true,
	"REAL":   true,
	"DOUBLE": true,
	"FLOAT4": true,
	"FLOAT8": true,
}

// DataTypePreferenceRule warns about FLOAT/REAL/DOUBLE column types in
// CREATE TABLE statements and suggests NUMERIC or DECIMAL instead.
type DataTypePreferenceRule struct{}

// ID returns the rule identifier
func (*DataTypePreferenceRule) ID() string {
	return "data_type_preference"
}

// Check inspects the column definitions of every CREATE TABLE body.
func (r *DataTypePreferenceRule) Check(doc *Document) []*types.Violation {
	var violations []*types.Violation
	for _, body := range tableBodies(doc) {
		for _, def := range columnDefs(doc, body) {
			typeTok := doc.Tokens[def.typeTok]
			if !discouragedFloatTypes[typeTok.Normalized()] {
				continue
			}
			violations = append(violations, &types.Violation{
				RuleID:   r.ID(),
				Severity: types.Severity_WARNING,
				Message: fmt.Sprintf(
					"column %q uses approximate type %s; prefer NUMERIC or DECIMAL unless floating point is required",
					doc.Tokens[def.nameTok].Unquoted(), typeTok.Normalized(),
				),
				StartPosition: typeTok.Start,
			})
		}
	}
	return violations
}
