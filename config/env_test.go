package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAIDefaults(t *testing.T) {
	assert.Equal(t, "https://api.groq.com/openai/v1", AIBaseURL())
	assert.Equal(t, "llama-3.3-70b-versatile", AIModel())
	assert.InDelta(t, 0.2, AITemperature(), 0.001)
	assert.Equal(t, 30*time.Second, AITimeout())
}

func TestAppDefaults(t *testing.T) {
	assert.NotEmpty(t, AppPort())
	assert.NotEmpty(t, DatabaseDriver())
	assert.Equal(t, []string{"*"}, CORSOrigins())
}

func TestGetFallback(t *testing.T) {
	assert.Equal(t, "fallback", Get("UNSET_KEY_FOR_TEST", "fallback"))
}
