package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Admin API",
        "description": "Administrative API for student/teacher registration, fee collection and materials publishing",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student registration and search"},
        {"name": "Payments", "description": "Fee collection and receipts"},
        {"name": "Teachers", "description": "Teacher registration"},
        {"name": "Materials", "description": "Published links and exams"}
    ],
    "paths": {
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "Search students by name or code",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string", "description": "Case-sensitive substring matched against name or code"}
                ],
                "responses": {"200": {"description": "Matching students (possibly empty)", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "post": {
                "tags": ["Students"],
                "summary": "Register a new student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created student including generated code", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export the student roster",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "produces": ["text/csv", "application/pdf"],
                "responses": {"200": {"description": "Roster file"}}
            }
        },
        "/students/{code}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get one student by code",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Student", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/payments/{code}": {
            "get": {
                "tags": ["Payments"],
                "summary": "Look up a student's balance",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Balance statement", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Payments"],
                "summary": "Record a fee payment",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PayRequest"}}
                ],
                "responses": {
                    "200": {"description": "Payment result with active credentials", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Amount outside (0, remaining]", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/payments/{code}/history": {
            "get": {
                "tags": ["Payments"],
                "summary": "List a student's recorded payments",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "Payment ledger entries", "schema": {"$ref": "#/definitions/Envelope"}}}
            }
        },
        "/payments/{code}/receipt": {
            "get": {
                "tags": ["Payments"],
                "summary": "Download a PDF receipt",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"}
                ],
                "produces": ["application/pdf"],
                "responses": {"200": {"description": "Receipt file"}}
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "responses": {"200": {"description": "Teachers without passwords", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Register a new teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterTeacherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Registration with one-time password handoff", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/materials": {
            "get": {
                "tags": ["Materials"],
                "summary": "List published materials",
                "responses": {"200": {"description": "Materials newest first", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "post": {
                "tags": ["Materials"],
                "summary": "Publish a material link",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PublishMaterialRequest"}}
                ],
                "responses": {
                    "201": {"description": "Published material", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "RegisterStudentRequest": {
            "type": "object",
            "required": ["full_name"],
            "properties": {
                "full_name": {"type": "string"},
                "phone": {"type": "string"},
                "total_fees": {"type": "number", "minimum": 0}
            }
        },
        "RegisterTeacherRequest": {
            "type": "object",
            "required": ["full_name", "subject", "grade", "term"],
            "properties": {
                "full_name": {"type": "string"},
                "subject": {"type": "string"},
                "grade": {"type": "string"},
                "term": {"type": "string"}
            }
        },
        "PublishMaterialRequest": {
            "type": "object",
            "required": ["type", "title", "link"],
            "properties": {
                "type": {"type": "string", "enum": ["Global", "Subject"]},
                "title": {"type": "string"},
                "link": {"type": "string"},
                "teacher_code": {"type": "string", "description": "Required for Subject materials"}
            }
        },
        "PayRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {
                "amount": {"type": "number", "description": "Must be in (0, remaining]"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
