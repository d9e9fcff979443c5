package gemini

// GenerateRequest is a content generation request.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content is one conversation message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is one piece of message content.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig controls generation parameters.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateResponse is the API response.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content Content `json:"content"`
}
