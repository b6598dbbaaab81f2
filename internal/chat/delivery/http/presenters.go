package http

import (
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/chat"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

// --- Request DTOs ---

type chatTurn struct {
	Sender string `json:"sender" binding:"required,oneof=driver assistant"`
	Text   string `json:"text"   binding:"required"`
}

type chatReq struct {
	Message    string     `json:"message"     binding:"required"`
	DriverType string     `json:"driver_type"`
	History    []chatTurn `json:"history"`
	SessionID  string     `json:"session_id"`
}

func (r chatReq) toInput() chat.ProcessInput {
	history := make([]model.ChatMessage, 0, len(r.History))
	for _, turn := range r.History {
		history = append(history, model.ChatMessage{
			Sender: model.Sender(turn.Sender),
			Text:   turn.Text,
		})
	}
	return chat.ProcessInput{
		Message:    r.Message,
		DriverType: model.ParseDriverType(r.DriverType),
		History:    history,
		SessionID:  r.SessionID,
	}
}

// ---

type updateKnowledgeReq struct {
	Category string `json:"category" binding:"required"`
	Key      string `json:"key"      binding:"required"`
	Value    string `json:"value"    binding:"required"`
}

func (r updateKnowledgeReq) toInput() chat.UpdateKnowledgeInput {
	return chat.UpdateKnowledgeInput{
		Category: r.Category,
		Key:      r.Key,
		Value:    r.Value,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply string `json:"reply"`
}

func (h *handler) newChatResp(output chat.ProcessOutput) chatResp {
	return chatResp{Reply: output.Reply}
}

type transcribeResp struct {
	Transcription string `json:"transcription"`
}

func (h *handler) newTranscribeResp(output chat.TranscribeOutput) transcribeResp {
	return transcribeResp{Transcription: output.Transcription}
}
