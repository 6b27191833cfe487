package notification

import "fmt"

// Email templates. Dates arrive pre-formatted ("Monday, January 2, 2006"),
// time slots as "<start> - <end>" labels.

const mailFooter = `
	<div style="margin-top: 20px; color: #666;">
		<p>Best regards,</p>
		<p>The Mentorify Team</p>
	</div>
</div>`

const mailHeader = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`

func detailBlock(rows string) string {
	return `<div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">` + rows + `</div>`
}

// BookingRequestedMentee confirms to the mentee that their request was placed.
func BookingRequestedMentee(menteeName, mentorName, date, timeSlot string) (subject, body string) {
	subject = "Mentoring Session Requested"
	body = fmt.Sprintf(`%s
	<h2 style="color: #2c3e50;">Request Received</h2>
	<p>Hello %s,</p>
	<p>Your session request has been sent. You will be notified once the mentor confirms it:</p>
	%s
	<p>You can track the request from your dashboard.</p>
	%s`, mailHeader, menteeName, detailBlock(fmt.Sprintf(`
		<p><strong>Mentor:</strong> %s</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time Slot:</strong> %s</p>`, mentorName, date, timeSlot)), mailFooter)
	return subject, body
}

// BookingRequestedMentor tells the mentor a new request is waiting.
func BookingRequestedMentor(mentorName, menteeName, date, timeSlot, message string) (subject, body string) {
	subject = "New Mentoring Session Request"
	rows := fmt.Sprintf(`
		<p><strong>Mentee:</strong> %s</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time Slot:</strong> %s</p>`, menteeName, date, timeSlot)
	if message != "" {
		rows += fmt.Sprintf(`<p><strong>Message:</strong> %s</p>`, message)
	}
	body = fmt.Sprintf(`%s
	<h2 style="color: #2c3e50;">New Session Request</h2>
	<p>Hello %s,</p>
	<p>A mentee has requested a session with you:</p>
	%s
	<p>Please accept or decline the request from your dashboard.</p>
	%s`, mailHeader, mentorName, detailBlock(rows), mailFooter)
	return subject, body
}

// SessionConfirmed notifies the mentee of a confirmed session.
func SessionConfirmed(menteeName, mentorName, date, timeSlot string) (subject, body string) {
	subject = "Mentoring Session Confirmed!"
	body = fmt.Sprintf(`%s
	<h2 style="color: #2c3e50;">Session Confirmed!</h2>
	<p>Hello %s,</p>
	<p>Great news! Your mentoring session has been confirmed with the following details:</p>
	%s
	<p>Please make sure to:</p>
	<ul>
		<li>Be on time for your session</li>
		<li>Prepare any specific questions you'd like to discuss</li>
		<li>Have a stable internet connection</li>
	</ul>
	%s`, mailHeader, menteeName, detailBlock(fmt.Sprintf(`
		<p><strong>Mentor:</strong> %s</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time Slot:</strong> %s</p>`, mentorName, date, timeSlot)), mailFooter)
	return subject, body
}

// SessionCancelled notifies the counterparty of a cancellation.
func SessionCancelled(recipientName, mentorName, date, timeSlot string) (subject, body string) {
	subject = "Mentoring Session Cancelled"
	body = fmt.Sprintf(`%s
	<h2 style="color: #2c3e50;">Session Cancelled</h2>
	<p>Hello %s,</p>
	<p>We regret to inform you that your mentoring session has been cancelled. Here are the details of the cancelled session:</p>
	%s
	<p>You can book another session with the same or different mentor through our platform.</p>
	%s`, mailHeader, recipientName, detailBlock(fmt.Sprintf(`
		<p><strong>Mentor:</strong> %s</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time Slot:</strong> %s</p>`, mentorName, date, timeSlot)), mailFooter)
	return subject, body
}

// MeetingLinkAdded sends the mentee the meeting link for an upcoming session.
func MeetingLinkAdded(menteeName, mentorName, date, timeSlot, link string) (subject, body string) {
	subject = "Meeting Link for Your Mentoring Session"
	body = fmt.Sprintf(`%s
	<h2 style="color: #2c3e50;">Meeting Link Added!</h2>
	<p>Hello %s,</p>
	<p>Your mentor has added the meeting link for your upcoming session:</p>
	%s
	<p>Please join the meeting on time using the link above.</p>
	%s`, mailHeader, menteeName, detailBlock(fmt.Sprintf(`
		<p><strong>Mentor:</strong> %s</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time Slot:</strong> %s</p>
		<p><strong>Meeting Link:</strong> <a href="%s">%s</a></p>`, mentorName, date, timeSlot, link, link)), mailFooter)
	return subject, body
}

// MentorApproved tells a mentor their account passed admin review.
func MentorApproved(mentorName string) (subject, body string) {
	subject = "Your Mentorify Mentor Account Has Been Approved"
	body = fmt.Sprintf(`%s
	<h2 style="color: #2c3e50;">Welcome Aboard!</h2>
	<p>Hello %s,</p>
	<p>Your mentor account has been approved. You can now log in, publish your weekly availability and start receiving session requests.</p>
	%s`, mailHeader, mentorName, mailFooter)
	return subject, body
}

// MentorRemoved tells a mentor their account was removed from the platform.
func MentorRemoved(mentorName string) (subject, body string) {
	subject = "Your Mentorify Mentor Account Has Been Removed"
	body = fmt.Sprintf(`%s
	<h2 style="color: #2c3e50;">Account Removed</h2>
	<p>Hello %s,</p>
	<p>Your mentor account has been removed from Mentorify by an administrator. Any open session requests have been closed.</p>
	<p>If you believe this was a mistake, please contact support.</p>
	%s`, mailHeader, mentorName, mailFooter)
	return subject, body
}

// SignupOTP carries the email verification code for registration.
func SignupOTP(otp string) (subject, body string) {
	subject = "Your Mentorify Verification Code"
	body = fmt.Sprintf(`%s
	<h2 style="color: #2c3e50;">Verify Your Email</h2>
	<p>Use the code below to finish creating your account. It expires in 5 minutes.</p>
	%s
	%s`, mailHeader, detailBlock(fmt.Sprintf(`<p style="font-size: 24px; letter-spacing: 4px;"><strong>%s</strong></p>`, otp)), mailFooter)
	return subject, body
}
