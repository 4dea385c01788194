package project

import (
	"prreview-service/internal/domain/ports/input"
	ports "prreview-service/internal/domain/ports/output"
)

type ProjectHandler struct {
	projectService input.ProjectInputPort
	log            ports.Logger
}

func NewProjectHandler(s input.ProjectInputPort, log ports.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: s, log: log}
}
