package validator

import "testing"

func TestValidateUserCreate(t *testing.T) {
	bv := NewBusinessValidator()

	tests := []struct {
		name    string
		req     UserCreateRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     UserCreateRequest{Name: "Ani Hakobyan", Email: "ani@example.com"},
			wantErr: false,
		},
		{
			name:    "missing email",
			req:     UserCreateRequest{Name: "Ani Hakobyan"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     UserCreateRequest{Name: "Ani", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "blank name",
			req:     UserCreateRequest{Name: "   ", Email: "ani@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateUserCreate(&tt.req)
			if errs.HasErrors() != tt.wantErr {
				t.Errorf("ValidateUserCreate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateSessionCreate(t *testing.T) {
	bv := NewBusinessValidator()

	tests := []struct {
		name    string
		req     ChatSessionCreateRequest
		wantErr bool
	}{
		{
			name: "single participant",
			req: ChatSessionCreateRequest{
				Participants: []ChatParticipantRequest{{UserID: 1, Language: "en"}},
			},
			wantErr: false,
		},
		{
			name:    "no participants",
			req:     ChatSessionCreateRequest{Name: "Practice"},
			wantErr: true,
		},
		{
			name: "duplicate participant",
			req: ChatSessionCreateRequest{
				Participants: []ChatParticipantRequest{{UserID: 1}, {UserID: 1}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateSessionCreate(&tt.req)
			if errs.HasErrors() != tt.wantErr {
				t.Errorf("ValidateSessionCreate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateMessageCreate(t *testing.T) {
	bv := NewBusinessValidator()

	tests := []struct {
		name    string
		req     ChatMessageCreateRequest
		wantErr bool
	}{
		{
			name: "valid message",
			req: ChatMessageCreateRequest{
				SessionID: 1, SenderID: 2, Text: "Barev!", Language: "hy",
				TranslatedText: "Hello!", TranslatedLanguage: "en",
			},
			wantErr: false,
		},
		{
			name: "blank text",
			req: ChatMessageCreateRequest{
				SessionID: 1, SenderID: 2, Text: "   ",
				TranslatedText: "Hello!", TranslatedLanguage: "en",
			},
			wantErr: true,
		},
		{
			name:    "missing translated text",
			req:     ChatMessageCreateRequest{SessionID: 1, SenderID: 2, Text: "Hi", Language: "en"},
			wantErr: true,
		},
		{
			name:    "translation without language",
			req:     ChatMessageCreateRequest{SessionID: 1, SenderID: 2, Text: "Hi", TranslatedText: "Barev"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateMessageCreate(&tt.req)
			if errs.HasErrors() != tt.wantErr {
				t.Errorf("ValidateMessageCreate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateTranslate(t *testing.T) {
	bv := NewBusinessValidator()

	tests := []struct {
		name    string
		req     TranslateRequest
		wantErr bool
	}{
		{
			name:    "valid pair",
			req:     TranslateRequest{Text: "hello", SourceLanguage: "en", TargetLanguage: "hy"},
			wantErr: false,
		},
		{
			name:    "auto-detect source",
			req:     TranslateRequest{Text: "hello", TargetLanguage: "hy"},
			wantErr: false,
		},
		{
			name:    "same source and target",
			req:     TranslateRequest{Text: "hello", SourceLanguage: "en", TargetLanguage: "EN"},
			wantErr: true,
		},
		{
			name:    "missing target",
			req:     TranslateRequest{Text: "hello"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateTranslate(&tt.req)
			if errs.HasErrors() != tt.wantErr {
				t.Errorf("ValidateTranslate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestLanguageCodeRule(t *testing.T) {
	bv := NewBusinessValidator()

	valid := []string{"en", "hy", "pt-BR", "English"}
	for _, code := range valid {
		req := TranslateRequest{Text: "hi", TargetLanguage: code}
		if errs := bv.ValidateTranslate(&req); errs.HasErrors() {
			t.Errorf("expected %q to be accepted, got %v", code, errs)
		}
	}

	invalid := []string{"e", "en_US!", "123"}
	for _, code := range invalid {
		req := TranslateRequest{Text: "hi", TargetLanguage: code}
		if errs := bv.ValidateTranslate(&req); !errs.HasErrors() {
			t.Errorf("expected %q to be rejected", code)
		}
	}
}
