package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// openAPIDocument is the static API description served at /openapi.json.
// It is built once; nothing in it is request-dependent.
var openAPIDocument = map[string]any{
	"openapi": "3.0.3",
	"info": map[string]any{
		"title":       "Invite Mailer",
		"description": "Minimal service that renders a registration invitation email and relays it over SMTP.",
		"version":     "1.0.0",
	},
	"paths": map[string]any{
		"/health": map[string]any{
			"get": map[string]any{
				"summary": "Health probe",
				"responses": map[string]any{
					"200": map[string]any{
						"description": "Service is up",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"ok": map[string]any{"type": "boolean"},
									},
								},
							},
						},
					},
				},
			},
		},
		"/send-invite-email": map[string]any{
			"post": map[string]any{
				"summary":  "Render and send an invitation email",
				"security": []any{map[string]any{"ApiKeyAuth": []any{}}},
				"requestBody": map[string]any{
					"required": true,
					"content": map[string]any{
						"application/json": map[string]any{
							"schema": map[string]any{
								"type":     "object",
								"required": []any{"email", "link"},
								"properties": map[string]any{
									"email":             map[string]any{"type": "string", "description": "Recipient, bare address or \"Name <addr>\" form"},
									"link":              map[string]any{"type": "string", "description": "Registration link"},
									"first_name":        map[string]any{"type": "string"},
									"last_name":         map[string]any{"type": "string"},
									"role":              map[string]any{"type": "string"},
									"organization_name": map[string]any{"type": "string"},
									"from":              map[string]any{"type": "string", "description": "Optional reply-to hint"},
								},
							},
						},
					},
				},
				"responses": map[string]any{
					"200": map[string]any{
						"description": "Message handed to the SMTP relay",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"delivered": map[string]any{"type": "boolean"},
										"messageId": map[string]any{"type": "string", "nullable": true},
									},
								},
							},
						},
					},
					"400": map[string]any{"description": "Missing or invalid email/link"},
					"401": map[string]any{"description": "Missing or incorrect API key"},
					"500": map[string]any{"description": "SMTP credentials or sender address not configured"},
					"502": map[string]any{"description": "SMTP relay rejected the message"},
				},
			},
		},
	},
	"components": map[string]any{
		"securitySchemes": map[string]any{
			"ApiKeyAuth": map[string]any{
				"type": "apiKey",
				"in":   "header",
				"name": "x-api-key",
			},
		},
	},
}

// docsPage renders the OpenAPI document with Swagger UI.
const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Invite Mailer API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/openapi.json",
      dom_id: "#swagger-ui"
    });
  </script>
</body>
</html>`

// handleOpenAPIDocument serves the machine-readable API description.
//
// Route: GET /openapi.json
func (s *Server) handleOpenAPIDocument(c echo.Context) error {
	return c.JSON(http.StatusOK, openAPIDocument)
}

// handleDocs serves the human-browsable rendering of the API description.
//
// Route: GET /docs
func (s *Server) handleDocs(c echo.Context) error {
	return c.HTML(http.StatusOK, docsPage)
}
