package documentstore

import "encoding/json"

// IDField is the attribute holding the storage-assigned identifier.
const IDField = "id"

// Document is a stored record as a JSON-shaped attribute map.
type Document map[string]any

// ToDocument converts v into a Document using its json struct tags.
func ToDocument(v any) (Document, error) {
	if d, ok := v.(Document); ok {
		v = map[string]any(d)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return d, nil
}

// Decode fills out from the document using out's json struct tags.
func (d Document) Decode(out any) error {
	b, err := json.Marshal(map[string]any(d))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// WithoutID returns a shallow copy of d without the storage identifier.
func (d Document) WithoutID() Document {
	out := make(Document, len(d))
	for k, v := range d {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}
