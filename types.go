package main

import "agroadvisor/models"

// Request/response DTOs. Keep them minimal and explicit.

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

type idResp struct {
	ID string `json:"id"`
}

type analyzeReq struct {
	FarmerID   *string `json:"farmer_id,omitempty"`
	TargetCrop *string `json:"target_crop,omitempty"`
}

type analyzeResp struct {
	ID     string                `json:"id"`
	Result models.AnalysisResult `json:"result"`
}

// validationResp carries field-level detail for rejected payloads.
type validationResp struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}
