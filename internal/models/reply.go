package models

// Reply links a staff message in the feedback chat to its copy in the user's chat.
type Reply struct {
	// Id is the message id in the feedback chat.
	Id      int `bson:"_id"`
	TopicId int `bson:"topic_id"`
	// BotMessageId is the id of the copy the bot sent to the user.
	BotMessageId int `bson:"bot_message_id"`
	Version      int `bson:"version"`
}
