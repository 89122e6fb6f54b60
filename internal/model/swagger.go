package model

// SwaggerDocument is an exported Swagger 2.0 description kept as generic JSON
// so that fields this service does not touch survive unchanged.
type SwaggerDocument map[string]any

// Paths returns the "paths" object, or nil if the document has none.
func (d SwaggerDocument) Paths() map[string]any {
	paths, _ := d["paths"].(map[string]any)
	return paths
}

// Info returns the "info" object, creating it when missing.
func (d SwaggerDocument) Info() map[string]any {
	info, ok := d["info"].(map[string]any)
	if !ok {
		info = make(map[string]any)
		d["info"] = info
	}
	return info
}
