// Package record defines the candidate-record representation shared by the
// rule engine and the LLM pass, the merge stage that reconciles them, and
// the validation/cleanup stage that turns a merged record into the final
// ordered output.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/osuji-k/rfp-extractor/constants"
)

// Candidate is an intermediate field mapping, possibly partial, produced by
// either the rule engine or an external source. Values are nil, string,
// []string, or a contact map.
type Candidate = map[string]any

// New returns a candidate with every schema key present and null.
func New() Candidate {
	c := make(Candidate, len(constants.SchemaFields))
	for _, f := range constants.SchemaFields {
		c[f] = nil
	}
	return c
}

// Final is one output record: the cleaned schema fields plus bookkeeping.
type Final struct {
	Fields     Candidate // exactly the schema keys
	SourceFile string
	RuleRecord Candidate // raw rule-only sub-record, for audit
	LLMUsed    bool
}

// MarshalJSON emits the schema keys in canonical order followed by the
// bookkeeping keys, so output files diff cleanly across runs.
func (f Final) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range constants.SchemaFields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(&buf, k, f.Fields[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(',')
	if err := writePair(&buf, constants.KeySourceFile, f.SourceFile); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeOrderedCandidate(&buf, constants.KeyRuleExtracted, f.RuleRecord); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writePair(&buf, constants.KeyLLMUsed, f.LLMUsed); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writePair(buf *bytes.Buffer, key string, val any) error {
	kb, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(kb)
	buf.WriteByte(':')
	if m, ok := val.(map[string]any); ok && looksLikeContact(m) {
		return writeContact(buf, m)
	}
	vb, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	buf.Write(vb)
	return nil
}

// writeOrderedCandidate emits a nested candidate with its keys in schema
// order as well.
func writeOrderedCandidate(buf *bytes.Buffer, key string, c Candidate) error {
	kb, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(kb)
	buf.WriteByte(':')
	if c == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteByte('{')
	for i, f := range constants.SchemaFields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(buf, f, c[f]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeContact emits a contact object with its four keys in fixed order.
func writeContact(buf *bytes.Buffer, m map[string]any) error {
	buf.WriteByte('{')
	for i, k := range constants.ContactKeys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m[k])
		if err != nil {
			return err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return nil
}

// looksLikeContact reports whether m carries only contact sub-keys, so the
// ordered contact writer applies.
func looksLikeContact(m map[string]any) bool {
	if len(m) > len(constants.ContactKeys) {
		return false
	}
	for k := range m {
		found := false
		for _, ck := range constants.ContactKeys {
			if k == ck {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
