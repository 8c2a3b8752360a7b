package submit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/johnnybahia/marcasceara/constants"
)

// BuildEnvelopeJSONSchema returns the aggregation endpoint's wire contract
// as a JSON-Schema map. The payload is validated locally before every send:
// a malformed record means an extractor bug, and the sheet backend accepts
// anything silently, so this is the last place to catch it.
func BuildEnvelopeJSONSchema() map[string]any {
	dateProp := map[string]any{"type": "string", "pattern": `^\d{2}/\d{2}/\d{4}$`}

	record := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"dataPedido":      dateProp,
			"dataRecebimento": dateProp,
			"arquivo":         map[string]any{"type": "string", "minLength": 1},
			"cliente":         map[string]any{"type": "string", "enum": constants.ClientNames()},
			"marca":           map[string]any{"type": "string", "minLength": 1},
			"local":           map[string]any{"type": "string", "minLength": 1},
			"qtd":             map[string]any{"type": "integer", "minimum": 0},
			"unidade":         map[string]any{"type": "string", "enum": constants.UnitNames()},
			"valor":           map[string]any{"type": "string", "pattern": `^R\$ [\d.]+,\d{2}$`},
			"ordemCompra":     map[string]any{"type": "string", "minLength": 1},
			"elastico":        map[string]any{"type": "string", "enum": []string{"SIM"}},
		},
		"required": []string{
			"dataPedido", "dataRecebimento", "arquivo", "cliente", "marca",
			"local", "qtd", "unidade", "valor", "ordemCompra",
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"pedidos": map[string]any{"type": "array", "minItems": 1, "items": record},
		},
		"required": []string{"pedidos"},
	}
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// ValidatePayload validates raw envelope JSON against the wire contract.
func ValidatePayload(data []byte) error {
	schemaOnce.Do(func() {
		b, err := json.Marshal(BuildEnvelopeJSONSchema())
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("envelope.json", bytes.NewReader(b)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile("envelope.json")
	})
	if schemaErr != nil {
		return schemaErr
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match contract: %w", err)
	}
	return nil
}
