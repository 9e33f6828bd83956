package suggest

import "encoding/json"

// The generation API answers in several shapes depending on routing:
// an array of generations, a single generation object, a nested data array,
// or a plain string. normalizeGeneration flattens all of them to one string
// at the boundary so nothing downstream has to care.

type generation struct {
	GeneratedText string `json:"generated_text"`
}

type nestedGenerations struct {
	Data []generation `json:"data"`
}

func normalizeGeneration(body []byte) string {
	var arr []generation
	if err := json.Unmarshal(body, &arr); err == nil && len(arr) > 0 && arr[0].GeneratedText != "" {
		return arr[0].GeneratedText
	}

	var single generation
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText
	}

	var nested nestedGenerations
	if err := json.Unmarshal(body, &nested); err == nil && len(nested.Data) > 0 && nested.Data[0].GeneratedText != "" {
		return nested.Data[0].GeneratedText
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain
	}

	return string(body)
}
