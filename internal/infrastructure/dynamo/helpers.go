package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// stringSet wraps a single value as a DynamoDB string set, for use with
// ADD/DELETE update expressions against set attributes.
func stringSet(values ...string) *types.AttributeValueMemberSS {
	return &types.AttributeValueMemberSS{Value: values}
}

// batchGetMaxKeys is the BatchGetItem per-request key limit.
const batchGetMaxKeys = 100

// chunkKeys builds single-attribute key maps for the values, split into chunks
// of at most size keys each, preserving order.
func chunkKeys(name string, values []string, size int) [][]map[string]types.AttributeValue {
	var chunks [][]map[string]types.AttributeValue
	for start := 0; start < len(values); start += size {
		end := start + size
		if end > len(values) {
			end = len(values)
		}
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, v := range values[start:end] {
			keys = append(keys, strKey(name, v))
		}
		chunks = append(chunks, keys)
	}
	return chunks
}
