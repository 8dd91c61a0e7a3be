package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"srs-intake-be/internal/constant"
	"srs-intake-be/internal/dto"
	"srs-intake-be/internal/pkg/logger"
	"srs-intake-be/pkg/llm"
)

type IEnhanceService interface {
	Enhance(ctx context.Context, req *dto.EnhanceSectionRequest) (*dto.EnhanceSectionResponse, error)
}

type enhanceService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewEnhanceService(provider llm.LLMProvider, logger logger.ILogger) IEnhanceService {
	return &enhanceService{
		provider: provider,
		logger:   logger,
	}
}

var sectionFormats = map[string]string{
	dto.SectionProblemStatement: constant.ProblemStatementFormat,
	dto.SectionCoreFeatures:     constant.CoreFeaturesFormat,
	dto.SectionPrimaryUserFlow:  constant.PrimaryUserFlowFormat,
}

var codeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n?(.*?)\\n?```$")

func (s *enhanceService) Enhance(ctx context.Context, req *dto.EnhanceSectionRequest) (*dto.EnhanceSectionResponse, error) {
	format, ok := sectionFormats[req.SectionType]
	if !ok {
		return nil, fmt.Errorf("unsupported section type: %s", req.SectionType)
	}

	prompt := fmt.Sprintf(constant.SectionEnhancerPrompt, req.SectionType, strings.TrimSpace(req.UserInput), format)
	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.SectionEnhancerSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: prompt},
	}

	raw, err := s.provider.Chat(ctx, history, llm.WithTemperature(0.3), llm.WithJSONOutput())
	if err != nil {
		s.logger.Error("ENHANCE", "LLM call failed", map[string]interface{}{
			"section_type": req.SectionType,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("enhance %s: %w", req.SectionType, err)
	}

	content := extractContent(raw)
	if content == "" {
		return nil, fmt.Errorf("enhance %s: model returned empty content", req.SectionType)
	}

	s.logger.Info("ENHANCE", "Section enhanced", map[string]interface{}{
		"section_type": req.SectionType,
		"input_len":    len(req.UserInput),
		"output_len":   len(content),
	})

	return &dto.EnhanceSectionResponse{Content: content}, nil
}

// extractContent accepts {"content": "..."} or plain text, with or
// without a surrounding code fence.
func extractContent(raw string) string {
	text := strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	var out dto.EnhanceSectionResponse
	if strings.HasPrefix(text, "{") && json.Unmarshal([]byte(text), &out) == nil {
		return strings.TrimSpace(out.Content)
	}
	return text
}
