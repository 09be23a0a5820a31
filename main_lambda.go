//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type optimizeRequest struct {
	MaxLinks *int            `json:"maxLinks"`
	Ignore   []string        `json:"ignore"`
	Catalog  json.RawMessage `json:"catalog"`
}

var logger = zap.NewNop()

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req optimizeRequest
	if body != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return errResp(400, "invalid JSON: "+err.Error())
		}
	}

	cfg := DefaultConfig()
	if req.MaxLinks != nil {
		cfg.MaxLinks = *req.MaxLinks
	}
	if req.Ignore != nil {
		cfg.Ignore = req.Ignore
	}
	if err := cfg.Validate(); err != nil {
		return errResp(400, err.Error())
	}

	var (
		cat *Catalog
		err error
	)
	if len(req.Catalog) > 0 {
		cat, err = parseCatalog(string(req.Catalog))
	} else {
		cat, err = DefaultCatalog()
	}
	if err != nil {
		return errResp(400, err.Error())
	}

	res, err := runSearch(ctx, cat, cfg, logger)
	if err != nil {
		logger.Error("search failed", zap.Error(err))
		return errResp(500, "search failed")
	}

	respJSON, _ := json.Marshal(res)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	if l, err := zap.NewProduction(); err == nil {
		logger = l
		defer func() { _ = logger.Sync() }()
	}
	lambda.Start(handler)
}
