package pr

import (
	"prreview-service/internal/domain/ports/input"
	ports "prreview-service/internal/domain/ports/output"
)

type PRHandler struct {
	prService input.PRInputPort
	log       ports.Logger
}

func NewPRHandler(s input.PRInputPort, log ports.Logger) *PRHandler {
	return &PRHandler{prService: s, log: log}
}
