// internal/service/encode_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"escpos-service/internal/config"
	"escpos-service/internal/dialect"
	"escpos-service/internal/model"
	"escpos-service/internal/repository"
	"escpos-service/internal/utils"
	"escpos-service/pkg/escpos"
)

// EncodeService turns semantic encode requests into ESC/POS command
// sequences and records every call in the audit trail
type EncodeService struct {
	registry      *dialect.Registry
	codec         escpos.Codec
	operationRepo repository.OperationRepository
	config        *config.Config
	logger        *utils.ServiceLogger
}

// NewEncodeService creates a new encode service instance
func NewEncodeService(
	registry *dialect.Registry,
	codec escpos.Codec,
	operationRepo repository.OperationRepository,
	config *config.Config,
	logger *zap.Logger,
) *EncodeService {
	return &EncodeService{
		registry:      registry,
		codec:         codec,
		operationRepo: operationRepo,
		config:        config,
		logger:        utils.NewServiceLogger(logger, "encode-service"),
	}
}

// Encode executes one semantic encode request against a registered dialect.
// The call is synchronous: it either returns the complete sequence or an
// error, never partial output.
func (es *EncodeService) Encode(ctx context.Context, req *model.EncodeRequest) (*model.EncodeResult, error) {
	kind := model.EncodeKind(strings.ToUpper(strings.TrimSpace(string(req.Kind))))
	if !kind.IsValid() {
		return nil, &escpos.InvalidArgumentError{Field: "kind", Reason: fmt.Sprintf("unknown encode kind %q", req.Kind)}
	}

	dialectName := req.Dialect
	if dialectName == "" {
		dialectName = es.config.Encoder.DefaultDialect
	}

	table, err := es.registry.Get(dialectName)
	if err != nil {
		return nil, &escpos.InvalidArgumentError{Field: "dialect", Reason: err.Error()}
	}

	encoder := escpos.NewEncoder(table, es.codec)

	operationID := uuid.New()
	opLogger := utils.NewOperationLogger(es.logger.Logger, string(kind), operationID.String())
	opLogger.Start(zap.String("dialect", dialectName))

	startTime := time.Now()
	sequence, encodeErr := es.dispatch(encoder, kind, req.Data)
	duration := time.Since(startTime)

	recorded := es.recordOperation(ctx, operationID, kind, dialectName, req, len(sequence), duration, encodeErr)

	if encodeErr != nil {
		opLogger.Error(encodeErr)
		return nil, encodeErr
	}

	opLogger.Success(len(sequence))

	result := &model.EncodeResult{
		Kind:          kind,
		Dialect:       dialectName,
		Sequence:      sequence,
		Length:        len(sequence),
		CorrelationID: req.CorrelationID,
	}
	if recorded {
		id := operationID
		result.OperationID = &id
	}

	return result, nil
}

// recordOperation writes the audit record for one encode call. Audit writes
// are best-effort: a storage failure is logged and never fails the encode.
func (es *EncodeService) recordOperation(
	ctx context.Context,
	id uuid.UUID,
	kind model.EncodeKind,
	dialectName string,
	req *model.EncodeRequest,
	sequenceLength int,
	duration time.Duration,
	encodeErr error,
) bool {
	if !es.config.Audit.Enabled || es.operationRepo == nil {
		return false
	}

	operation := &model.EncodeOperation{
		ID:            id,
		Kind:          kind,
		Dialect:       dialectName,
		RequestData:   req.Data,
		Status:        model.OperationStatusSuccess,
		CorrelationID: req.CorrelationID,
		CreatedAt:     time.Now(),
	}

	durationMs := int(duration.Milliseconds())
	operation.DurationMs = &durationMs

	if encodeErr != nil {
		operation.Status = model.OperationStatusFailed
		errorMessage := encodeErr.Error()
		operation.ErrorMessage = &errorMessage
	} else {
		operation.SequenceLength = &sequenceLength
	}

	if err := es.operationRepo.Create(ctx, operation); err != nil {
		es.logger.Error("Failed to record encode operation", zap.Error(err))
		return false
	}

	return true
}

// dispatch routes a request to the encoder call for its kind
func (es *EncodeService) dispatch(encoder *escpos.Encoder, kind model.EncodeKind, data model.JSONObject) ([]byte, error) {
	switch kind {
	case model.EncodeKindFormatText:
		return es.encodeFormatText(encoder, data)
	case model.EncodeKindAlign:
		return es.encodeAlign(encoder, data)
	case model.EncodeKindColor:
		return es.encodeColor(encoder, data)
	case model.EncodeKindBarcode:
		return es.encodeBarcode(encoder, data)
	case model.EncodeKindCut:
		return es.encodeCut(encoder, data)
	case model.EncodeKindCharset:
		return es.encodeCharset(encoder, data)
	case model.EncodeKindReencode:
		return es.encodeReencode(encoder, data)
	case model.EncodeKindInitialize:
		return encoder.Initialize()
	case model.EncodeKindFeed:
		return es.encodeFeed(encoder, data)
	case model.EncodeKindOpenDrawer:
		return es.encodeOpenDrawer(encoder, data)
	case model.EncodeKindDocument:
		return es.encodeDocument(encoder, data)
	default:
		return nil, &escpos.InvalidArgumentError{Field: "kind", Reason: fmt.Sprintf("unknown encode kind %q", kind)}
	}
}

// encodeFormatText handles FORMAT_TEXT requests
func (es *EncodeService) encodeFormatText(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	text, ok := data["text"].(string)
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "text", Reason: "text must be a string"}
	}

	styleName := "normal"
	if raw, ok := data["style"]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, &escpos.InvalidArgumentError{Field: "style", Reason: "style must be a string"}
		}
		styleName = name
	}

	style, err := escpos.ParseStyle(styleName)
	if err != nil {
		return nil, err
	}

	return encoder.FormatText(text, style)
}

// encodeAlign handles ALIGN requests
func (es *EncodeService) encodeAlign(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	text, ok := data["text"].(string)
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "text", Reason: "text must be a string"}
	}

	name, ok := data["alignment"].(string)
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "alignment", Reason: "alignment must be a string"}
	}

	alignment, err := escpos.ParseAlignment(name)
	if err != nil {
		return nil, err
	}

	return encoder.AlignText(text, alignment)
}

// encodeColor handles COLOR requests
func (es *EncodeService) encodeColor(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	text, ok := data["text"].(string)
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "text", Reason: "text must be a string"}
	}

	name, ok := data["color"].(string)
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "color", Reason: "color must be a string"}
	}

	color, err := escpos.ParseColor(name)
	if err != nil {
		return nil, err
	}

	return encoder.ColorText(text, color)
}

// encodeBarcode handles BARCODE requests. Omitted numeric arguments and the
// text position fall back to the configured defaults.
func (es *EncodeService) encodeBarcode(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	barcodeData, ok := data["data"].(string)
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "data", Reason: "barcode data must be a string"}
	}

	formatName, ok := data["format"].(string)
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "format", Reason: "barcode format must be a string"}
	}

	opts := es.defaultBarcodeOptions()

	if raw, ok := data["height"]; ok {
		height, err := intArgument("height", raw)
		if err != nil {
			return nil, err
		}
		opts.Height = height
	}

	if raw, ok := data["width"]; ok {
		width, err := intArgument("width", raw)
		if err != nil {
			return nil, err
		}
		opts.Width = width
	}

	if raw, ok := data["text_position"]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, &escpos.InvalidArgumentError{Field: "text_position", Reason: "text position must be a string"}
		}
		position, err := escpos.ParseTextPosition(name)
		if err != nil {
			return nil, err
		}
		opts.TextPosition = position
	}

	return encoder.Barcode(barcodeData, escpos.ParseBarcodeFormat(formatName), opts)
}

// defaultBarcodeOptions resolves the configured barcode defaults
func (es *EncodeService) defaultBarcodeOptions() escpos.BarcodeOptions {
	opts := escpos.DefaultBarcodeOptions()

	if es.config.Encoder.Barcode.Height > 0 {
		opts.Height = es.config.Encoder.Barcode.Height
	}
	if es.config.Encoder.Barcode.Width > 0 {
		opts.Width = es.config.Encoder.Barcode.Width
	}
	if es.config.Encoder.Barcode.TextPosition != "" {
		if position, err := escpos.ParseTextPosition(es.config.Encoder.Barcode.TextPosition); err == nil {
			opts.TextPosition = position
		}
	}

	return opts
}

// encodeCut handles CUT requests
func (es *EncodeService) encodeCut(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	mode := "full"
	if raw, ok := data["mode"]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, &escpos.InvalidArgumentError{Field: "mode", Reason: "cut mode must be a string"}
		}
		mode = name
	}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "full":
		return encoder.Cut()
	case "partial":
		return encoder.PartialCut()
	default:
		return nil, &escpos.InvalidArgumentError{Field: "mode", Reason: fmt.Sprintf("unknown cut mode %q", mode)}
	}
}

// encodeCharset handles CHARSET requests
func (es *EncodeService) encodeCharset(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	name, ok := data["charset"].(string)
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "charset", Reason: "charset must be a string"}
	}

	return encoder.SelectCodePage(escpos.ParseCodePage(name))
}

// encodeReencode handles REENCODE requests
func (es *EncodeService) encodeReencode(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	text, ok := data["text"].(string)
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "text", Reason: "text must be a string"}
	}

	charsetName := es.config.Encoder.DefaultCharset
	if raw, ok := data["charset"]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, &escpos.InvalidArgumentError{Field: "charset", Reason: "charset must be a string"}
		}
		charsetName = name
	}

	var opts escpos.EncodeOptions

	if raw, ok := data["invalid_policy"]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, &escpos.InvalidArgumentError{Field: "invalid_policy", Reason: "policy must be a string"}
		}
		policy, err := escpos.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		opts.InvalidPolicy = policy
	}

	if raw, ok := data["undefined_policy"]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, &escpos.InvalidArgumentError{Field: "undefined_policy", Reason: "policy must be a string"}
		}
		policy, err := escpos.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		opts.UndefinedPolicy = policy
	}

	return encoder.Encode(text, escpos.ParseCodePage(charsetName), opts)
}

// encodeFeed handles FEED requests
func (es *EncodeService) encodeFeed(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	lines := 1
	if raw, ok := data["lines"]; ok {
		value, err := intArgument("lines", raw)
		if err != nil {
			return nil, err
		}
		lines = value
	}

	return encoder.Feed(lines)
}

// encodeOpenDrawer handles OPEN_DRAWER requests
func (es *EncodeService) encodeOpenDrawer(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	pinNumber := 2
	if raw, ok := data["pin"]; ok {
		value, err := intArgument("pin", raw)
		if err != nil {
			return nil, err
		}
		pinNumber = value
	}

	pin, err := escpos.ParseDrawerPin(pinNumber)
	if err != nil {
		return nil, err
	}

	return encoder.OpenDrawer(pin)
}

// encodeDocument concatenates the step sequences in request order. A failing
// step fails the whole document; nothing partial is ever returned.
func (es *EncodeService) encodeDocument(encoder *escpos.Encoder, data model.JSONObject) ([]byte, error) {
	rawSteps, ok := data["steps"].([]interface{})
	if !ok {
		return nil, &escpos.InvalidArgumentError{Field: "steps", Reason: "steps must be a list"}
	}
	if len(rawSteps) == 0 {
		return nil, &escpos.InvalidArgumentError{Field: "steps", Reason: "document needs at least one step"}
	}

	var document []byte
	for i, rawStep := range rawSteps {
		step, ok := rawStep.(map[string]interface{})
		if !ok {
			return nil, &escpos.InvalidArgumentError{Field: "steps", Reason: fmt.Sprintf("step %d must be an object", i)}
		}

		kindName, ok := step["kind"].(string)
		if !ok {
			return nil, &escpos.InvalidArgumentError{Field: "steps", Reason: fmt.Sprintf("step %d is missing a kind", i)}
		}

		kind := model.EncodeKind(strings.ToUpper(strings.TrimSpace(kindName)))
		if kind == model.EncodeKindDocument {
			return nil, &escpos.InvalidArgumentError{Field: "steps", Reason: fmt.Sprintf("step %d: documents do not nest", i)}
		}
		if !kind.IsValid() {
			return nil, &escpos.InvalidArgumentError{Field: "steps", Reason: fmt.Sprintf("step %d: unknown encode kind %q", i, kindName)}
		}

		stepData, _ := step["data"].(map[string]interface{})

		sequence, err := es.dispatch(encoder, kind, model.JSONObject(stepData))
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		document = append(document, sequence...)
	}

	return document, nil
}

// intArgument coerces a JSON numeric field into an int
func intArgument(field string, raw interface{}) (int, error) {
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, &escpos.InvalidArgumentError{Field: field, Reason: fmt.Sprintf("%s must be a number", field)}
	}
}
