package broadcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicDerivation(t *testing.T) {
	id := uint(10)

	assert.Equal(t, "conversation:10", ConversationTopic(&id))
	assert.Equal(t, "global-room", ConversationTopic(nil))
	assert.Equal(t, "user:7", UserTopic(7))
}
