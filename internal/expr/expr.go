// Package expr builds DynamoDB update expressions from attribute maps.
package expr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrNoChanges is returned when the changes map is empty.
var ErrNoChanges = errors.New("expr: no changes to apply")

// Set builds a SET update expression assigning every entry in changes.
// Attribute names go through expression placeholders so reserved words and
// special characters are safe. Keys are processed in sorted order, so the
// expression is deterministic for a given changes map.
func Set(changes map[string]any) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(changes) == 0 {
		return "", nil, nil, ErrNoChanges
	}

	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make(map[string]string, len(keys))
	values := make(map[string]types.AttributeValue, len(keys))
	clauses := make([]string, 0, len(keys))

	for i, k := range keys {
		av, err := attributevalue.Marshal(changes[k])
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal %s: %w", k, err)
		}
		nameKey := fmt.Sprintf("#attr%d", i)
		valueKey := fmt.Sprintf(":val%d", i)
		names[nameKey] = k
		values[valueKey] = av
		clauses = append(clauses, fmt.Sprintf("%s = %s", nameKey, valueKey))
	}

	return "SET " + strings.Join(clauses, ", "), names, values, nil
}
