package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/future-architect/ngram"
	"github.com/future-architect/ngram/internal/config"
	_ "github.com/future-architect/ngram/nlp/snowball"
	"go.uber.org/zap"
)

type Result struct {
	Count  int      `json:"count"`
	Ngrams []string `json:"ngrams"`
}

type ErrorResult struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func errorResult(status int, err error) events.APIGatewayProxyResponse {
	b, _ := json.Marshal(&ErrorResult{
		Error: err.Error(),
		Kind:  ngram.ErrorKind(err),
	})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       string(b),
	}
}

var (
	baseConfig *config.Config
	configErr  error
	logger     = zap.NewNop()
)

func init() {
	baseConfig, configErr = config.LoadConfig(os.Getenv("NGRAM_CONFIG_FILE"))
	if l, err := zap.NewProduction(); err == nil {
		logger = l
	}
}

// requestConfig applies the "n" and "mode" query parameters to the base configuration.
func requestConfig(base config.Config, params map[string]string) (config.Config, error) {
	cfg := base
	if n, ok := params["n"]; ok {
		size, err := strconv.Atoi(n)
		if err != nil {
			return cfg, fmt.Errorf("%w: n must be an integer, got %q", ngram.ErrInvalidConfiguration, n)
		}
		cfg.Size = size
	}
	if mode, ok := params["mode"]; ok {
		cfg.Mode = mode
	}
	return cfg, nil
}

func Handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if configErr != nil {
		return errorResult(500, fmt.Errorf("config error: %w", configErr)), nil
	}
	cfg, err := requestConfig(*baseConfig, request.QueryStringParameters)
	if err != nil {
		return errorResult(400, err), nil
	}
	tokenizer, err := cfg.Tokenizer()
	if err != nil {
		return errorResult(400, err), nil
	}
	ngrams, err := tokenizer.TokenizeText(request.Body)
	if err != nil {
		logger.Info("rejected record",
			zap.String("request_id", request.RequestContext.RequestID),
			zap.String("kind", ngram.ErrorKind(err)),
			zap.Error(err))
		return errorResult(400, err), nil
	}

	b, _ := json.Marshal(&Result{
		Count:  len(ngrams),
		Ngrams: ngrams,
	})
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}, nil
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
