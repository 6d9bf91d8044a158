package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feewhiz/feewhiz/docs"
)

const swaggerDocPath = "/swagger/doc.json"

// SetupSwagger serves the embedded API document and a UI that reads it.
// Both live under one catch-all route.
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "doc.json" {
			c.Data(http.StatusOK, "application/json; charset=utf-8", docs.Swagger)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUIHTML))
	})
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>FeeWhiz API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: '` + swaggerDocPath + `', dom_id: '#swagger-ui', deepLinking: true });
  </script>
</body>
</html>`
