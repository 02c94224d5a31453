// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/ent/chatinvitation"
	"github.com/teambuh/slamon/ent/chatmessage"
	"github.com/teambuh/slamon/ent/classificationcache"
	"github.com/teambuh/slamon/ent/clientrequest"
	"github.com/teambuh/slamon/ent/faqitem"
	"github.com/teambuh/slamon/ent/feedbackresponse"
	"github.com/teambuh/slamon/ent/globalsettings"
	"github.com/teambuh/slamon/ent/lease"
	"github.com/teambuh/slamon/ent/schema"
	"github.com/teambuh/slamon/ent/slaalert"
	"github.com/teambuh/slamon/ent/timerjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatFields := schema.Chat{}.Fields()
	_ = chatFields
	// chatDescTitle is the schema descriptor for title field.
	chatDescTitle := chatFields[1].Descriptor()
	// chat.DefaultTitle holds the default value on creation for the title field.
	chat.DefaultTitle = chatDescTitle.Default.(string)
	// chat.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	chat.TitleValidator = chatDescTitle.Validators[0].(func(string) error)
	// chatDescSLAEnabled is the schema descriptor for sla_enabled field.
	chatDescSLAEnabled := chatFields[3].Descriptor()
	// chat.DefaultSLAEnabled holds the default value on creation for the sla_enabled field.
	chat.DefaultSLAEnabled = chatDescSLAEnabled.Default.(bool)
	// chatDescSLAThresholdMinutes is the schema descriptor for sla_threshold_minutes field.
	chatDescSLAThresholdMinutes := chatFields[4].Descriptor()
	// chat.SLAThresholdMinutesValidator is a validator for the "sla_threshold_minutes" field. It is called by the builders before save.
	chat.SLAThresholdMinutesValidator = func() func(int) error {
		validators := chatDescSLAThresholdMinutes.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(sla_threshold_minutes int) error {
			for _, fn := range fns {
				if err := fn(sla_threshold_minutes); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chatDescMonitoringEnabled is the schema descriptor for monitoring_enabled field.
	chatDescMonitoringEnabled := chatFields[5].Descriptor()
	// chat.DefaultMonitoringEnabled holds the default value on creation for the monitoring_enabled field.
	chat.DefaultMonitoringEnabled = chatDescMonitoringEnabled.Default.(bool)
	// chatDescIs24x7 is the schema descriptor for is_24x7 field.
	chatDescIs24x7 := chatFields[6].Descriptor()
	// chat.DefaultIs24x7 holds the default value on creation for the is_24x7 field.
	chat.DefaultIs24x7 = chatDescIs24x7.Default.(bool)
	// chatDescNotifyInChatOnBreach is the schema descriptor for notify_in_chat_on_breach field.
	chatDescNotifyInChatOnBreach := chatFields[9].Descriptor()
	// chat.DefaultNotifyInChatOnBreach holds the default value on creation for the notify_in_chat_on_breach field.
	chat.DefaultNotifyInChatOnBreach = chatDescNotifyInChatOnBreach.Default.(bool)
	// chatDescCreatedAt is the schema descriptor for created_at field.
	chatDescCreatedAt := chatFields[12].Descriptor()
	// chat.DefaultCreatedAt holds the default value on creation for the created_at field.
	chat.DefaultCreatedAt = chatDescCreatedAt.Default.(func() time.Time)
	// chatDescUpdatedAt is the schema descriptor for updated_at field.
	chatDescUpdatedAt := chatFields[13].Descriptor()
	// chat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chat.DefaultUpdatedAt = chatDescUpdatedAt.Default.(func() time.Time)
	// chat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chat.UpdateDefaultUpdatedAt = chatDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatinvitationFields := schema.ChatInvitation{}.Fields()
	_ = chatinvitationFields
	// chatinvitationDescCreatedAt is the schema descriptor for created_at field.
	chatinvitationDescCreatedAt := chatinvitationFields[6].Descriptor()
	// chatinvitation.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatinvitation.DefaultCreatedAt = chatinvitationDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescSenderUsername is the schema descriptor for sender_username field.
	chatmessageDescSenderUsername := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultSenderUsername holds the default value on creation for the sender_username field.
	chatmessage.DefaultSenderUsername = chatmessageDescSenderUsername.Default.(string)
	// chatmessageDescText is the schema descriptor for text field.
	chatmessageDescText := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultText holds the default value on creation for the text field.
	chatmessage.DefaultText = chatmessageDescText.Default.(string)
	// chatmessageDescFromAccountant is the schema descriptor for from_accountant field.
	chatmessageDescFromAccountant := chatmessageFields[6].Descriptor()
	// chatmessage.DefaultFromAccountant holds the default value on creation for the from_accountant field.
	chatmessage.DefaultFromAccountant = chatmessageDescFromAccountant.Default.(bool)
	// chatmessageDescFaqHandled is the schema descriptor for faq_handled field.
	chatmessageDescFaqHandled := chatmessageFields[7].Descriptor()
	// chatmessage.DefaultFaqHandled holds the default value on creation for the faq_handled field.
	chatmessage.DefaultFaqHandled = chatmessageDescFaqHandled.Default.(bool)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[9].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	classificationcacheFields := schema.ClassificationCache{}.Fields()
	_ = classificationcacheFields
	// classificationcacheDescConfidence is the schema descriptor for confidence field.
	classificationcacheDescConfidence := classificationcacheFields[2].Descriptor()
	// classificationcache.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	classificationcache.ConfidenceValidator = func() func(float64) error {
		validators := classificationcacheDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// classificationcacheDescSource is the schema descriptor for source field.
	classificationcacheDescSource := classificationcacheFields[3].Descriptor()
	// classificationcache.DefaultSource holds the default value on creation for the source field.
	classificationcache.DefaultSource = classificationcacheDescSource.Default.(string)
	// classificationcacheDescCreatedAt is the schema descriptor for created_at field.
	classificationcacheDescCreatedAt := classificationcacheFields[5].Descriptor()
	// classificationcache.DefaultCreatedAt holds the default value on creation for the created_at field.
	classificationcache.DefaultCreatedAt = classificationcacheDescCreatedAt.Default.(func() time.Time)
	clientrequestFields := schema.ClientRequest{}.Fields()
	_ = clientrequestFields
	// clientrequestDescClientUsername is the schema descriptor for client_username field.
	clientrequestDescClientUsername := clientrequestFields[2].Descriptor()
	// clientrequest.DefaultClientUsername holds the default value on creation for the client_username field.
	clientrequest.DefaultClientUsername = clientrequestDescClientUsername.Default.(string)
	// clientrequestDescSLABreached is the schema descriptor for sla_breached field.
	clientrequestDescSLABreached := clientrequestFields[10].Descriptor()
	// clientrequest.DefaultSLABreached holds the default value on creation for the sla_breached field.
	clientrequest.DefaultSLABreached = clientrequestDescSLABreached.Default.(bool)
	faqitemFields := schema.FAQItem{}.Fields()
	_ = faqitemFields
	// faqitemDescIsActive is the schema descriptor for is_active field.
	faqitemDescIsActive := faqitemFields[4].Descriptor()
	// faqitem.DefaultIsActive holds the default value on creation for the is_active field.
	faqitem.DefaultIsActive = faqitemDescIsActive.Default.(bool)
	// faqitemDescUsageCount is the schema descriptor for usage_count field.
	faqitemDescUsageCount := faqitemFields[5].Descriptor()
	// faqitem.DefaultUsageCount holds the default value on creation for the usage_count field.
	faqitem.DefaultUsageCount = faqitemDescUsageCount.Default.(int)
	// faqitemDescCreatedAt is the schema descriptor for created_at field.
	faqitemDescCreatedAt := faqitemFields[6].Descriptor()
	// faqitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	faqitem.DefaultCreatedAt = faqitemDescCreatedAt.Default.(func() time.Time)
	// faqitemDescUpdatedAt is the schema descriptor for updated_at field.
	faqitemDescUpdatedAt := faqitemFields[7].Descriptor()
	// faqitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	faqitem.DefaultUpdatedAt = faqitemDescUpdatedAt.Default.(func() time.Time)
	// faqitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	faqitem.UpdateDefaultUpdatedAt = faqitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	feedbackresponseFields := schema.FeedbackResponse{}.Fields()
	_ = feedbackresponseFields
	// feedbackresponseDescRating is the schema descriptor for rating field.
	feedbackresponseDescRating := feedbackresponseFields[2].Descriptor()
	// feedbackresponse.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	feedbackresponse.RatingValidator = func() func(int) error {
		validators := feedbackresponseDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// feedbackresponseDescSubmittedAt is the schema descriptor for submitted_at field.
	feedbackresponseDescSubmittedAt := feedbackresponseFields[4].Descriptor()
	// feedbackresponse.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	feedbackresponse.DefaultSubmittedAt = feedbackresponseDescSubmittedAt.Default.(func() time.Time)
	globalsettingsFields := schema.GlobalSettings{}.Fields()
	_ = globalsettingsFields
	// globalsettingsDescDefaultSLAThresholdMinutes is the schema descriptor for default_sla_threshold_minutes field.
	globalsettingsDescDefaultSLAThresholdMinutes := globalsettingsFields[1].Descriptor()
	// globalsettings.DefaultDefaultSLAThresholdMinutes holds the default value on creation for the default_sla_threshold_minutes field.
	globalsettings.DefaultDefaultSLAThresholdMinutes = globalsettingsDescDefaultSLAThresholdMinutes.Default.(int)
	// globalsettings.DefaultSLAThresholdMinutesValidator is a validator for the "default_sla_threshold_minutes" field. It is called by the builders before save.
	globalsettings.DefaultSLAThresholdMinutesValidator = func() func(int) error {
		validators := globalsettingsDescDefaultSLAThresholdMinutes.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(default_sla_threshold_minutes int) error {
			for _, fn := range fns {
				if err := fn(default_sla_threshold_minutes); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// globalsettingsDescWarningOffsetMinutes is the schema descriptor for warning_offset_minutes field.
	globalsettingsDescWarningOffsetMinutes := globalsettingsFields[2].Descriptor()
	// globalsettings.DefaultWarningOffsetMinutes holds the default value on creation for the warning_offset_minutes field.
	globalsettings.DefaultWarningOffsetMinutes = globalsettingsDescWarningOffsetMinutes.Default.(int)
	// globalsettingsDescEscalationIntervalMinutes is the schema descriptor for escalation_interval_minutes field.
	globalsettingsDescEscalationIntervalMinutes := globalsettingsFields[3].Descriptor()
	// globalsettings.DefaultEscalationIntervalMinutes holds the default value on creation for the escalation_interval_minutes field.
	globalsettings.DefaultEscalationIntervalMinutes = globalsettingsDescEscalationIntervalMinutes.Default.(int)
	// globalsettingsDescMaxEscalationLevel is the schema descriptor for max_escalation_level field.
	globalsettingsDescMaxEscalationLevel := globalsettingsFields[4].Descriptor()
	// globalsettings.DefaultMaxEscalationLevel holds the default value on creation for the max_escalation_level field.
	globalsettings.DefaultMaxEscalationLevel = globalsettingsDescMaxEscalationLevel.Default.(int)
	// globalsettingsDescLowRatingThreshold is the schema descriptor for low_rating_threshold field.
	globalsettingsDescLowRatingThreshold := globalsettingsFields[6].Descriptor()
	// globalsettings.DefaultLowRatingThreshold holds the default value on creation for the low_rating_threshold field.
	globalsettings.DefaultLowRatingThreshold = globalsettingsDescLowRatingThreshold.Default.(int)
	// globalsettings.LowRatingThresholdValidator is a validator for the "low_rating_threshold" field. It is called by the builders before save.
	globalsettings.LowRatingThresholdValidator = func() func(int) error {
		validators := globalsettingsDescLowRatingThreshold.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(low_rating_threshold int) error {
			for _, fn := range fns {
				if err := fn(low_rating_threshold); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// globalsettingsDescSLAConcurrency is the schema descriptor for sla_concurrency field.
	globalsettingsDescSLAConcurrency := globalsettingsFields[7].Descriptor()
	// globalsettings.DefaultSLAConcurrency holds the default value on creation for the sla_concurrency field.
	globalsettings.DefaultSLAConcurrency = globalsettingsDescSLAConcurrency.Default.(int)
	// globalsettingsDescSLARateLimitMax is the schema descriptor for sla_rate_limit_max field.
	globalsettingsDescSLARateLimitMax := globalsettingsFields[8].Descriptor()
	// globalsettings.DefaultSLARateLimitMax holds the default value on creation for the sla_rate_limit_max field.
	globalsettings.DefaultSLARateLimitMax = globalsettingsDescSLARateLimitMax.Default.(int)
	// globalsettingsDescSLARateLimitWindowMs is the schema descriptor for sla_rate_limit_window_ms field.
	globalsettingsDescSLARateLimitWindowMs := globalsettingsFields[9].Descriptor()
	// globalsettings.DefaultSLARateLimitWindowMs holds the default value on creation for the sla_rate_limit_window_ms field.
	globalsettings.DefaultSLARateLimitWindowMs = globalsettingsDescSLARateLimitWindowMs.Default.(int)
	// globalsettingsDescReconcileIntervalMinutes is the schema descriptor for reconcile_interval_minutes field.
	globalsettingsDescReconcileIntervalMinutes := globalsettingsFields[10].Descriptor()
	// globalsettings.DefaultReconcileIntervalMinutes holds the default value on creation for the reconcile_interval_minutes field.
	globalsettings.DefaultReconcileIntervalMinutes = globalsettingsDescReconcileIntervalMinutes.Default.(int)
	// globalsettingsDescUpdatedAt is the schema descriptor for updated_at field.
	globalsettingsDescUpdatedAt := globalsettingsFields[11].Descriptor()
	// globalsettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	globalsettings.DefaultUpdatedAt = globalsettingsDescUpdatedAt.Default.(func() time.Time)
	// globalsettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	globalsettings.UpdateDefaultUpdatedAt = globalsettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	leaseFields := schema.Lease{}.Fields()
	_ = leaseFields
	// leaseDescAcquiredAt is the schema descriptor for acquired_at field.
	leaseDescAcquiredAt := leaseFields[3].Descriptor()
	// lease.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	lease.DefaultAcquiredAt = leaseDescAcquiredAt.Default.(func() time.Time)
	slaalertFields := schema.SLAAlert{}.Fields()
	_ = slaalertFields
	// slaalertDescEscalationLevel is the schema descriptor for escalation_level field.
	slaalertDescEscalationLevel := slaalertFields[4].Descriptor()
	// slaalert.EscalationLevelValidator is a validator for the "escalation_level" field. It is called by the builders before save.
	slaalert.EscalationLevelValidator = slaalertDescEscalationLevel.Validators[0].(func(int) error)
	// slaalertDescDeliveredCount is the schema descriptor for delivered_count field.
	slaalertDescDeliveredCount := slaalertFields[7].Descriptor()
	// slaalert.DefaultDeliveredCount holds the default value on creation for the delivered_count field.
	slaalert.DefaultDeliveredCount = slaalertDescDeliveredCount.Default.(int)
	// slaalertDescFailedCount is the schema descriptor for failed_count field.
	slaalertDescFailedCount := slaalertFields[8].Descriptor()
	// slaalert.DefaultFailedCount holds the default value on creation for the failed_count field.
	slaalert.DefaultFailedCount = slaalertDescFailedCount.Default.(int)
	// slaalertDescCreatedAt is the schema descriptor for created_at field.
	slaalertDescCreatedAt := slaalertFields[11].Descriptor()
	// slaalert.DefaultCreatedAt holds the default value on creation for the created_at field.
	slaalert.DefaultCreatedAt = slaalertDescCreatedAt.Default.(func() time.Time)
	timerjobFields := schema.TimerJob{}.Fields()
	_ = timerjobFields
	// timerjobDescAttempts is the schema descriptor for attempts field.
	timerjobDescAttempts := timerjobFields[5].Descriptor()
	// timerjob.DefaultAttempts holds the default value on creation for the attempts field.
	timerjob.DefaultAttempts = timerjobDescAttempts.Default.(int)
	// timerjobDescCreatedAt is the schema descriptor for created_at field.
	timerjobDescCreatedAt := timerjobFields[8].Descriptor()
	// timerjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	timerjob.DefaultCreatedAt = timerjobDescCreatedAt.Default.(func() time.Time)
}
