package common

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// CORS headers matching the gateway configuration. Every response carries
// them so browser clients work whether or not the gateway injects its own.
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
	}
}

// RespondJSON writes data as a JSON response body
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	for k, v := range corsHeaders() {
		w.Header().Set(k, v)
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondMessage writes a {"message": ...} body, used for 4xx responses
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}

// RespondNotFound writes the canonical 404 body
func RespondNotFound(w http.ResponseWriter) {
	RespondMessage(w, http.StatusNotFound, "Not Found")
}

// RespondInternalError writes a {"error": ...} body with status 500,
// surfacing the failure's message
func RespondInternalError(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}

// ProxyJSON builds an API Gateway proxy response with a JSON body, for
// Lambda entry points that answer the gateway directly
func ProxyJSON(status int, data interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders(),
			Body:       `{"error":"failed to encode response"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders(),
		Body:       string(body),
	}
}

// ProxyError maps an error to an API Gateway proxy response
func ProxyError(status int, message string) events.APIGatewayProxyResponse {
	return ProxyJSON(status, map[string]string{"error": message})
}
